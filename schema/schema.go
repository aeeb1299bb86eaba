// Package schema checks structured data against the fixed legacy document
// schemas (RAW, ANN, OCR). The checks are a pass-through to a generic
// JSON-schema validation routine and are unrelated to the DocTags grammar.
package schema

import (
	"embed"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/legacy_doc/*.json
var schemaFS embed.FS

// Validate checks an instance against a schema, both given as structured
// data (maps, slices, scalars). The message is "All good!" on success and
// the concatenated violation descriptions otherwise.
func Validate(instance, schemaDoc any) (ok bool, message string) {
	result, e := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schemaDoc),
		gojsonschema.NewGoLoader(instance),
	)
	if e != nil {
		return false, e.Error()
	}
	return report(result)
}

// ValidateRaw validates a RAW file.
func ValidateRaw(instance any) (ok bool, message string) {
	log.Debug().Msg("validate RAW schema ...")
	return validateLegacy(instance, "RAW.json")
}

// ValidateAnn validates an annotated (ANN) file.
func ValidateAnn(instance any) (ok bool, message string) {
	log.Debug().Msg("validate ANN schema ...")
	return validateLegacy(instance, "ANN.json")
}

// ValidateOCR validates an OCR output file.
func ValidateOCR(instance any) (ok bool, message string) {
	log.Debug().Msg("validate OCR schema ...")
	return validateLegacy(instance, "OCR-output.json")
}

var (
	legacyOnce sync.Once
	legacy     map[string]*gojsonschema.Schema
	legacyErr  error
)

// loadLegacy compiles the embedded schemas once. A failure here is a defect
// in the shipped schema files, not in any instance being validated.
func loadLegacy() (map[string]*gojsonschema.Schema, error) {
	legacyOnce.Do(func() {
		legacy = make(map[string]*gojsonschema.Schema, 3)
		for _, name := range []string{"RAW.json", "ANN.json", "OCR-output.json"} {
			content, e := schemaFS.ReadFile("schemas/legacy_doc/" + name)
			if e != nil {
				legacyErr = errors.Wrapf(e, "reading embedded schema %s", name)
				return
			}
			s, e := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
			if e != nil {
				legacyErr = errors.Wrapf(e, "compiling schema %s", name)
				return
			}
			legacy[name] = s
		}
	})
	return legacy, legacyErr
}

func validateLegacy(instance any, name string) (bool, string) {
	schemas, e := loadLegacy()
	if e != nil {
		panic(e)
	}

	result, e := schemas[name].Validate(gojsonschema.NewGoLoader(instance))
	if e != nil {
		return false, e.Error()
	}
	return report(result)
}

func report(result *gojsonschema.Result) (bool, string) {
	if result.Valid() {
		return true, "All good!"
	}

	descs := make([]string, len(result.Errors()))
	for i, re := range result.Errors() {
		descs[i] = re.String()
	}
	return false, strings.Join(descs, "; ")
}
