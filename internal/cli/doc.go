// SPDX-License-Identifier: EPL-2.0

// Package cli implements the sem2segy command line: the conversion itself on
// the root command and an inspect subcommand for checking the files it reads
// and writes.
package cli
