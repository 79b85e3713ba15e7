// SPDX-License-Identifier: EPL-2.0

// Package segy reads and writes SEG-Y revision 1 files holding a single
// common shot gather.
//
// # File Layout
//
// A file consists of:
//   - textual header (3200 bytes): 40 card images of 80 columns, EBCDIC or ASCII
//   - binary header (400 bytes): sample interval, samples per trace, format code
//   - per trace a 240-byte header followed by the samples
//
// Samples are 4-byte floats, either IBM System/360 (format code 1, the default)
// or IEEE (format code 5), big endian unless another byte order is requested.
//
// # Writing
//
//	err := segy.WriteFile("shot.segy", stream,
//	    segy.WithFormat(segy.FormatIEEEFloat),
//	    segy.WithComments("MODEL: two layers"),
//	)
//
// Every trace header carries its 1-based sequence number, the station number
// as trace number within the record and the source to receiver distance in
// metres (truncated) in bytes 37-40.
//
// # Reading
//
//	f, err := segy.ReadFile("shot.segy")
//	if err != nil {
//	    // Handle error
//	}
//	for _, tr := range f.Traces {
//	    fmt.Println(tr.Header.Offset, len(tr.Data))
//	}
//
// The byte order and the textual header encoding are detected. File.Stream
// converts the traces back to a trace.Stream.
package segy
