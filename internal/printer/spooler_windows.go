//go:build windows

package printer

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	winspool = windows.NewLazySystemDLL("winspool.drv")

	procOpenPrinter      = winspool.NewProc("OpenPrinterW")
	procClosePrinter     = winspool.NewProc("ClosePrinter")
	procStartDocPrinter  = winspool.NewProc("StartDocPrinterW")
	procEndDocPrinter    = winspool.NewProc("EndDocPrinter")
	procStartPagePrinter = winspool.NewProc("StartPagePrinter")
	procEndPagePrinter   = winspool.NewProc("EndPagePrinter")
	procWritePrinter     = winspool.NewProc("WritePrinter")
	procEnumPrinters     = winspool.NewProc("EnumPrintersW")
)

const printerEnumLocal = 0x00000002

type docInfo1 struct {
	DocName    *uint16
	OutputFile *uint16
	Datatype   *uint16
}

type printerInfo4 struct {
	PrinterName *uint16
	ServerName  *uint16
	Attributes  uint32
}

const spoolerSupported = true

// printToSpooler sends one RAW datatype document to a named spooler queue.
// RAW bypasses the printer driver so the ESC/POS bytes reach the device
// untouched.
func printToSpooler(name string, data []byte) error {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return openError(name, err)
	}

	var handle windows.Handle
	ret, _, callErr := procOpenPrinter.Call(
		uintptr(unsafe.Pointer(namePtr)),
		uintptr(unsafe.Pointer(&handle)),
		0,
	)
	if ret == 0 {
		return openError(name, callErr)
	}
	defer procClosePrinter.Call(uintptr(handle))

	docName, err := windows.UTF16PtrFromString("Tiket Antrian")
	if err != nil {
		return openError(name, err)
	}
	datatype, err := windows.UTF16PtrFromString("RAW")
	if err != nil {
		return openError(name, err)
	}
	doc := docInfo1{DocName: docName, Datatype: datatype}

	ret, _, callErr = procStartDocPrinter.Call(
		uintptr(handle),
		1,
		uintptr(unsafe.Pointer(&doc)),
	)
	if ret == 0 {
		return writeError(name, callErr)
	}
	defer procEndDocPrinter.Call(uintptr(handle))

	ret, _, callErr = procStartPagePrinter.Call(uintptr(handle))
	if ret == 0 {
		return writeError(name, callErr)
	}
	defer procEndPagePrinter.Call(uintptr(handle))

	var written uint32
	ret, _, callErr = procWritePrinter.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(&data[0])),
		uintptr(uint32(len(data))),
		uintptr(unsafe.Pointer(&written)),
	)
	if ret == 0 {
		return writeError(name, callErr)
	}
	if int(written) != len(data) {
		return writeError(name, errors.New("short write to spooler"))
	}
	return nil
}

// enumerateSpoolerPrinters lists every local printer queue by name.
func enumerateSpoolerPrinters() ([]string, error) {
	var needed, returned uint32

	// First call sizes the buffer.
	procEnumPrinters.Call(
		printerEnumLocal,
		0,
		4,
		0,
		0,
		uintptr(unsafe.Pointer(&needed)),
		uintptr(unsafe.Pointer(&returned)),
	)
	if needed == 0 {
		return nil, nil
	}

	buf := make([]byte, needed)
	ret, _, callErr := procEnumPrinters.Call(
		printerEnumLocal,
		0,
		4,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(needed),
		uintptr(unsafe.Pointer(&needed)),
		uintptr(unsafe.Pointer(&returned)),
	)
	if ret == 0 {
		return nil, callErr
	}

	infos := unsafe.Slice((*printerInfo4)(unsafe.Pointer(&buf[0])), returned)
	names := make([]string, 0, returned)
	for _, info := range infos {
		if info.PrinterName == nil {
			continue
		}
		names = append(names, windows.UTF16PtrToString(info.PrinterName))
	}
	return names, nil
}
