// Command loket is the operator CLI for the queue ticket daemon.
package main
