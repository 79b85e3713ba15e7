// SPDX-License-Identifier: EPL-2.0

package config

// File is the decoded form of a job file. Pointer fields are nil when the
// attribute or block is absent.
type File struct {
	DataFolder *string `hcl:"data_folder,optional"`
	Prefix     *string `hcl:"prefix,optional"`

	Seismogram *Seismogram `hcl:"seismogram,block"`
	Stations   *Stations   `hcl:"stations,block"`
	Offsets    *Offsets    `hcl:"offsets,block"`
	Resample   *Resample   `hcl:"resample,block"`
	Output     *Output     `hcl:"output,block"`
	Audition   *Audition   `hcl:"audition,block"`
}

type Seismogram struct {
	Type      *string `hcl:"type,optional"`
	Component *string `hcl:"component,optional"`
}

type Stations struct {
	First *int `hcl:"first,optional"`
	Last  *int `hcl:"last,optional"`
}

// Offsets are in km.
type Offsets struct {
	First   *float64 `hcl:"first,optional"`
	Last    *float64 `hcl:"last,optional"`
	Spacing *float64 `hcl:"spacing,optional"`
}

type Resample struct {
	Rate   *float64 `hcl:"rate,optional"`
	Method *string  `hcl:"method,optional"`
}

type Output struct {
	Name      *string `hcl:"name,optional"`
	PlotPDF   *bool   `hcl:"plot_pdf,optional"`
	Encoding  *string `hcl:"encoding,optional"`
	ByteOrder *string `hcl:"byte_order,optional"`
}

type Audition struct {
	Dir    *string `hcl:"dir,optional"`
	Format *string `hcl:"format,optional"`
	Rate   *int    `hcl:"rate,optional"`
}
