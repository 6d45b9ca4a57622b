package tools

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// InteractionType selects which experimental system category to keep.
type InteractionType string

const (
	TypeAll      InteractionType = "all"
	TypePhysical InteractionType = "physical"
	TypeGenetic  InteractionType = "genetic"
)

// Matches reports whether an upstream system type satisfies the filter.
// Upstream matching is string based, so the comparison ignores case.
func (t InteractionType) Matches(systemType string) bool {
	if t == TypeAll || t == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(systemType), string(t))
}

const (
	defaultInteractionMax = 500
	maxInteractionResults = 10000
	defaultGeneMax        = 25
	exportMax             = 10000
)

type InteractionArgs struct {
	Gene       string `json:"gene" validate:"required"`
	TaxonID    string `json:"taxon_id,omitempty"`
	MaxResults *int   `json:"max_results,omitempty" validate:"omitempty,min=1,max=10000"`
}

func (a *InteractionArgs) normalize() {
	a.Gene = strings.TrimSpace(a.Gene)
	a.TaxonID = strings.TrimSpace(a.TaxonID)
}

type GeneSearchArgs struct {
	Query      string `json:"query" validate:"required"`
	TaxonID    string `json:"taxon_id,omitempty"`
	MaxResults *int   `json:"max_results,omitempty" validate:"omitempty,min=1,max=100"`
}

func (a *GeneSearchArgs) normalize() {
	a.Query = strings.TrimSpace(a.Query)
	a.TaxonID = strings.TrimSpace(a.TaxonID)
}

type ExportArgs struct {
	BiogridIDs      []string `json:"biogrid_ids" validate:"required,min=1,dive,required,number"`
	InteractionType string   `json:"interaction_type,omitempty" validate:"omitempty,oneof=physical genetic all"`
}

func (a *ExportArgs) normalize() {
	for i, id := range a.BiogridIDs {
		a.BiogridIDs[i] = strings.TrimSpace(id)
	}
	a.InteractionType = strings.ToLower(strings.TrimSpace(a.InteractionType))
	if a.InteractionType == "" {
		a.InteractionType = string(TypeAll)
	}
}

type normalizer interface{ normalize() }

// newValidator reports field errors under their JSON argument names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// bindArguments decodes raw tool arguments into target with strict typing and
// validates the result. Any failure is an invalid-params error.
func bindArguments(v *validator.Validate, raw map[string]any, target normalizer) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  target,
		// argument names are case sensitive
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return internalError(fmt.Errorf("build argument decoder: %w", err))
	}
	if err := dec.Decode(raw); err != nil {
		return invalidParams("%s", flattenDecodeError(err))
	}
	target.normalize()
	if err := v.Struct(target); err != nil {
		return invalidParams("%s", describeValidation(err))
	}
	return nil
}

func flattenDecodeError(err error) string {
	lines := strings.Split(err.Error(), "\n")
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "* "))
		if l == "" || strings.HasSuffix(l, "error(s) decoding:") || strings.HasPrefix(l, "decoding failed due to") {
			continue
		}
		parts = append(parts, l)
	}
	if len(parts) == 0 {
		return err.Error()
	}
	return strings.Join(parts, "; ")
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, name+" is required")
		case "min":
			if fe.Kind() == reflect.Slice {
				msgs = append(msgs, fmt.Sprintf("%s must contain at least %s item(s)", name, fe.Param()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s must be >= %s", name, fe.Param()))
			}
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be <= %s", name, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", name, fe.Param()))
		case "number", "numeric":
			msgs = append(msgs, fmt.Sprintf("%s must contain only digits, got %q", name, fmt.Sprint(fe.Value())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", name, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
