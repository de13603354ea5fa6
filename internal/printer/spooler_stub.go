//go:build !windows

package printer

import "errors"

const spoolerSupported = false

func printToSpooler(name string, data []byte) error {
	return openError(name, errors.New("print spooler not available on this platform"))
}

func enumerateSpoolerPrinters() ([]string, error) {
	return nil, nil
}
