// Package checkpage renders the HTML page operators open to check an
// edition's barcode against its ISO week before it goes to print.
package checkpage
