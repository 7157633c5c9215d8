package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
)

// Validation thresholds.
const (
	// DefaultMaxTags is the tag count above which a warning is recorded.
	DefaultMaxTags = 10
	// DefaultMaxTagLength is the per-tag character limit.
	DefaultMaxTagLength = 50
	// DefaultOrderCeiling is the ordering value above which a warning is recorded.
	DefaultOrderCeiling = 1000
)

// DefaultEpochFloor is the earliest date considered plausible for content.
var DefaultEpochFloor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var timeZero time.Time

// Date layouts accepted for date fields.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Options tunes a validation pass. Zero values fall back to the defaults above.
type Options struct {
	MaxTags      int
	MaxTagLength int
	OrderCeiling int
	EpochFloor   time.Time

	// ErrIfInvalid makes Validate return a *domain.ValidationError after
	// the fact when the result is invalid. Validation itself never fails.
	ErrIfInvalid bool
}

func (o Options) withDefaults() Options {
	if o.MaxTags <= 0 {
		o.MaxTags = DefaultMaxTags
	}
	if o.MaxTagLength <= 0 {
		o.MaxTagLength = DefaultMaxTagLength
	}
	if o.OrderCeiling <= 0 {
		o.OrderCeiling = DefaultOrderCeiling
	}
	if o.EpochFloor.IsZero() {
		o.EpochFloor = DefaultEpochFloor
	}
	return o
}

// Result is the outcome of validating one raw entry.
type Result struct {
	Valid     bool
	Errors    []string
	Warnings  []string
	Sanitized map[string]any
}

func (r *Result) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validator checks raw entries against per-content-type schemas.
type Validator struct {
	logger logger.Logger
}

// New creates a validator.
func New(log logger.Logger) *Validator {
	return &Validator{logger: log}
}

// Validate checks a raw entry against the schema for the given content type.
// It always returns a Result; the error return is non-nil only when
// opts.ErrIfInvalid is set and the entry failed required-field validation.
func (v *Validator) Validate(contentType domain.ContentType, entry *domain.RawEntry, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	res := &Result{
		Valid:     true,
		Sanitized: make(map[string]any),
	}

	rules, ok := SchemaFor(contentType)
	if !ok {
		res.Valid = false
		res.addError("no schema for content type %q", contentType)
		return res, v.errIfRequested(contentType, entry, res, opts)
	}

	fields := entry.Fields
	if fields == nil {
		fields = map[string]any{}
	}

	for _, rule := range rules {
		raw, present := fields[rule.Name]
		if !present || raw == nil {
			if rule.Required {
				res.addError("missing required field %q", rule.Name)
				continue
			}
			res.addWarning("missing optional field %q, default substituted", rule.Name)
			res.Sanitized[rule.Name] = defaultFor(rule.Kind)
			continue
		}
		v.checkField(rule, raw, opts, res)
	}

	if len(res.Errors) > 0 {
		res.Valid = false
	}

	v.logger.Debug("entry validated",
		logger.String("content_type", string(contentType)),
		logger.String("entry_id", entry.Sys.ID),
		logger.Bool("valid", res.Valid),
		logger.Int("errors", len(res.Errors)),
		logger.Int("warnings", len(res.Warnings)),
	)

	return res, v.errIfRequested(contentType, entry, res, opts)
}

func (v *Validator) errIfRequested(contentType domain.ContentType, entry *domain.RawEntry, res *Result, opts Options) error {
	if !opts.ErrIfInvalid || res.Valid {
		return nil
	}
	return &domain.ValidationError{
		ContentType: contentType,
		EntryID:     entry.Sys.ID,
		Errors:      res.Errors,
	}
}

// checkField validates one present field and writes its sanitized value.
// A type mismatch is an error for required fields and a default-substituting
// warning for optional ones.
func (v *Validator) checkField(rule FieldRule, raw any, opts Options, res *Result) {
	switch rule.Kind {
	case KindString, KindText:
		s, ok := raw.(string)
		if !ok {
			v.typeMismatch(rule, raw, res)
			return
		}
		res.Sanitized[rule.Name] = s

	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			v.typeMismatch(rule, raw, res)
			return
		}
		res.Sanitized[rule.Name] = b

	case KindNumber:
		n, ok := asInt(raw)
		if !ok {
			v.typeMismatch(rule, raw, res)
			return
		}
		if n < 0 {
			res.addWarning("field %q: negative ordering value %d", rule.Name, n)
		}
		if n > opts.OrderCeiling {
			res.addWarning("field %q: ordering value %d exceeds ceiling %d", rule.Name, n, opts.OrderCeiling)
		}
		res.Sanitized[rule.Name] = n

	case KindDate:
		v.checkDate(rule, raw, opts, res)

	case KindStringList:
		items, ok := asStringList(raw)
		if !ok {
			v.typeMismatch(rule, raw, res)
			return
		}
		v.checkStringList(rule, items, opts, res)

	case KindAsset:
		asset, ok := asAsset(raw)
		if !ok {
			v.typeMismatch(rule, raw, res)
			return
		}
		v.checkAsset(rule.Name, *asset, res)
		res.Sanitized[rule.Name] = asset

	case KindAssetList:
		assets, ok := asAssetList(raw)
		if !ok {
			v.typeMismatch(rule, raw, res)
			return
		}
		for i := range assets {
			v.checkAsset(fmt.Sprintf("%s[%d]", rule.Name, i), assets[i], res)
		}
		res.Sanitized[rule.Name] = assets

	case KindReference:
		ref, ok := asReference(raw)
		if !ok {
			v.typeMismatch(rule, raw, res)
			return
		}
		res.Sanitized[rule.Name] = ref

	case KindSEO:
		seo, ok := asSEO(raw)
		if !ok {
			v.typeMismatch(rule, raw, res)
			return
		}
		v.checkSEO(rule.Name, seo, raw, res)
		res.Sanitized[rule.Name] = seo

	case KindSectionList:
		sections, dropped := asSections(raw)
		if sections == nil {
			v.typeMismatch(rule, raw, res)
			return
		}
		if dropped > 0 {
			res.addWarning("field %q: dropped %d malformed section(s)", rule.Name, dropped)
		}
		res.Sanitized[rule.Name] = sections
	}
}

// typeMismatch records a wrong-type field: error for required fields, warning
// plus default substitution for optional ones.
func (v *Validator) typeMismatch(rule FieldRule, raw any, res *Result) {
	if rule.Required {
		res.addError("field %q has wrong type %T", rule.Name, raw)
		return
	}
	res.addWarning("field %q has wrong type %T, default substituted", rule.Name, raw)
	res.Sanitized[rule.Name] = defaultFor(rule.Kind)
}

func (v *Validator) checkDate(rule FieldRule, raw any, opts Options, res *Result) {
	var parsed time.Time

	switch val := raw.(type) {
	case time.Time:
		parsed = val
	case string:
		var ok bool
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				parsed, ok = t, true
				break
			}
		}
		if !ok {
			// Unparsable dates are always an error, optional or not
			res.addError("field %q: unparsable date %q", rule.Name, val)
			return
		}
	default:
		if rule.Required {
			res.addError("field %q has wrong type %T", rule.Name, raw)
		} else {
			res.addWarning("field %q has wrong type %T, default substituted", rule.Name, raw)
			res.Sanitized[rule.Name] = timeZero
		}
		return
	}

	if parsed.After(time.Now()) {
		res.addWarning("field %q: date %s is in the future", rule.Name, parsed.Format("2006-01-02"))
	}
	if parsed.Before(opts.EpochFloor) {
		res.addWarning("field %q: date %s predates %s", rule.Name,
			parsed.Format("2006-01-02"), opts.EpochFloor.Format("2006-01-02"))
	}
	res.Sanitized[rule.Name] = parsed
}

func (v *Validator) checkStringList(rule FieldRule, items []string, opts Options, res *Result) {
	if len(items) == 0 {
		res.addWarning("field %q: empty list hurts discoverability", rule.Name)
	}
	if len(items) > opts.MaxTags {
		res.addWarning("field %q: %d entries exceeds maximum %d", rule.Name, len(items), opts.MaxTags)
	}
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			res.addWarning("field %q: entry %d is empty", rule.Name, i)
		} else if utf8.RuneCountInString(item) > opts.MaxTagLength {
			res.addWarning("field %q: entry %d exceeds %d characters", rule.Name, i, opts.MaxTagLength)
		}
	}
	res.Sanitized[rule.Name] = items
}
