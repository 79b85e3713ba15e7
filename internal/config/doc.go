// SPDX-License-Identifier: EPL-2.0

// Package config loads sem2segy job files written in HCL.
//
// A job file describes the same settings as the command line flags, grouped in
// blocks. Every attribute and block is optional:
//
//	data_folder = "OUTPUT_FILES/"
//
//	seismogram {
//	  type      = "v"
//	  component = "Z"
//	}
//
//	stations {
//	  first = 1
//	  last  = 48
//	}
//
//	offsets {
//	  first   = -2.35
//	  last    = 2.35
//	  spacing = 0.1
//	}
//
//	output {
//	  name     = "${env.SHOT_NAME}.segy"
//	  plot_pdf = true
//	}
//
// Expressions may read environment variables through env.<NAME> and call
// upper, lower and format.
package config
