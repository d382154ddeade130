package pipeline

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// ValidationMode selects how candidates are checked before being returned.
type ValidationMode string

const (
	// ValidationFull uses the live deliverability vendor.
	ValidationFull ValidationMode = "full"
	// ValidationBasic applies the syntactic format check only.
	ValidationBasic ValidationMode = "basic"
	// ValidationNone returns deduped candidates as-is.
	ValidationNone ValidationMode = "none"
)

// Operation names. These key both the configuration overrides and the
// run-scoped logging.
const (
	OpFindByCriteria      = "find_by_criteria"
	OpExtractFromText     = "extract_from_text"
	OpGenerateFromNames   = "generate_from_names"
	OpGenerateFromDomains = "generate_from_domains"
)

// OpConfig parameterizes one pipeline operation. All four operations share
// one run template; this record is the only thing that differs between them.
// UsesDomainFanOut is structural and not configurable.
type OpConfig struct {
	Name             string         `yaml:"-"`
	UsesDomainFanOut bool           `yaml:"-"`
	Validation       ValidationMode `yaml:"validation"`
	Cap              int            `yaml:"cap"` // 0 = uncapped
}

// defaultOps returns the per-operation defaults. resultCap applies to the
// criteria search only; the other operations are uncapped by default.
func defaultOps(resultCap int) map[string]OpConfig {
	return map[string]OpConfig{
		OpFindByCriteria: {
			Name:             OpFindByCriteria,
			UsesDomainFanOut: true,
			Validation:       ValidationFull,
			Cap:              resultCap,
		},
		OpExtractFromText: {
			Name:       OpExtractFromText,
			Validation: ValidationFull,
		},
		OpGenerateFromNames: {
			// Guesses are inherently unverifiable at this stage.
			Name:       OpGenerateFromNames,
			Validation: ValidationNone,
		},
		OpGenerateFromDomains: {
			Name:             OpGenerateFromDomains,
			UsesDomainFanOut: true,
			Validation:       ValidationNone,
		},
	}
}

// opOverride is one operation's overridable settings in the YAML file.
type opOverride struct {
	Validation ValidationMode `yaml:"validation"`
	Cap        *int           `yaml:"cap"`
}

// loadOpOverrides reads per-operation validation/cap overrides from a YAML
// file and applies them on top of the defaults.
func loadOpOverrides(path string, ops map[string]OpConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "pipeline: read operations file %s", path)
	}

	var wrapper struct {
		Operations map[string]opOverride `yaml:"operations"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return eris.Wrap(err, "pipeline: parse operations file")
	}

	for name, override := range wrapper.Operations {
		op, ok := ops[name]
		if !ok {
			return eris.Errorf("pipeline: unknown operation %q in %s", name, path)
		}
		if override.Validation != "" {
			switch override.Validation {
			case ValidationFull, ValidationBasic, ValidationNone:
				op.Validation = override.Validation
			default:
				return eris.Errorf("pipeline: unknown validation mode %q for %s", override.Validation, name)
			}
		}
		if override.Cap != nil {
			op.Cap = *override.Cap
		}
		ops[name] = op
	}
	return nil
}
