// Package data embeds the built-in knowledge base, the body-fat model and
// the sample catalogs served when no data directory is configured.
package data

import "embed"

//go:embed *.csv
var Catalogs embed.FS

//go:embed knowledge.yaml
var Knowledge []byte

//go:embed bodyfat_model.yaml
var BodyFatModel []byte
