// Package ticketaccess gives the CLI one surface for ticket operations
// whether or not the daemon is running.
package ticketaccess
