// Package escpos renders queue receipts as ESC/POS byte streams.
//
// Encode is a pure function of the layout and the ticket fields; the same
// inputs always yield the same bytes, and no device handling lives here.
package escpos
