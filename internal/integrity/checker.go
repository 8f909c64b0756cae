package integrity

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/dbctx"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

// Violation codes, one per rule family.
const (
	CodePKCheckFailed       = "PK_CHECK_FAILED"
	CodeDatatypeFailed      = "DATATYPE_CHECK_FAILED"
	CodeDatatypeLength      = "DATATYPE_CHECK_FAILED_LENGTH"
	CodeTimeLogicInvalid    = "TIME_LOGIC_CHECK_INVALID"
	CodeTimeLogicConflicted = "TIME_LOGIC_CHECK_CONFLICTED"
)

// Violation is one rule failure. It is data, never an error value.
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Result accumulates the violations of one candidate record.
type Result struct {
	Violations []Violation `json:"violations"`
}

func (r *Result) Passed() bool { return len(r.Violations) == 0 }

func (r *Result) add(code, message string, data any) {
	r.Violations = append(r.Violations, Violation{Code: code, Message: message, Data: data})
}

// Codes flattens the violation codes, index-aligned with Messages and Data.
func (r *Result) Codes() []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Code)
	}
	return out
}

func (r *Result) Messages() []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Message)
	}
	return out
}

func (r *Result) Data() []any {
	out := make([]any, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Data)
	}
	return out
}

// FactoryStore is the read-only lookup surface the checker needs.
type FactoryStore interface {
	GetByKey(dbc dbctx.Context, key domain.FactoryKey) (*domain.Factory, error)
	GetTimeRelated(dbc dbctx.Context, previousFactoryCode, productFactoryCode, companyCode string) ([]domain.Factory, error)
}

// CheckOptions enables each rule family independently.
type CheckOptions struct {
	PKCheck        bool
	DatatypeCheck  bool
	TimeLogicCheck bool
}

// Checker evaluates a candidate factory record against the enabled rules.
// Rules run in the fixed order PK, datatype, time-logic, all appending into
// one result; rules never short-circuit each other.
type Checker struct {
	store FactoryStore
	log   *logger.Logger
}

func NewChecker(store FactoryStore, baseLog *logger.Logger) *Checker {
	return &Checker{store: store, log: baseLog.With("component", "IntegrityChecker")}
}

// Check runs the enabled rules. rec carries the parsed candidate for the key
// and time-logic rules; payload carries the raw request fields so the
// datatype rule sees what the caller actually sent, before any coercion.
// Only store lookups can fail; every rule outcome is data on the Result.
func (c *Checker) Check(dbc dbctx.Context, rec domain.FactoryRecord, payload map[string]json.RawMessage, opts CheckOptions) (*Result, error) {
	result := &Result{Violations: []Violation{}}

	if opts.PKCheck {
		if err := c.checkPK(dbc, rec, result); err != nil {
			return nil, err
		}
	}
	if opts.DatatypeCheck {
		c.checkDatatypes(payload, result)
	}
	if opts.TimeLogicCheck {
		if err := c.checkTimeLogic(dbc, rec, result); err != nil {
			return nil, err
		}
	}

	c.log.Debug("integrity check finished",
		"pk_check", opts.PKCheck,
		"datatype_check", opts.DatatypeCheck,
		"time_logic_check", opts.TimeLogicCheck,
		"violations", len(result.Violations))
	return result, nil
}

// checkPK fails when the key tuple already resolves to a row. Existence is
// the failure condition, matching the conflict semantics of single-record
// registration.
func (c *Checker) checkPK(dbc dbctx.Context, rec domain.FactoryRecord, result *Result) error {
	existing, err := c.store.GetByKey(dbc, rec.Key())
	if err != nil {
		return err
	}
	if existing != nil {
		result.add(CodePKCheckFailed,
			"A record with the specified primary key already exists",
			rec.Key())
	}
	return nil
}

func (c *Checker) checkDatatypes(payload map[string]json.RawMessage, result *Result) {
	for _, rule := range factoryRules {
		raw, present := payload[rule.Name]
		if !present {
			continue
		}

		actual := jsonTypeName(raw)
		if actual == "null" {
			if rule.Required {
				result.add(CodeDatatypeFailed,
					fmt.Sprintf("Field %s is required and must not be null", rule.Name),
					map[string]any{"field": rule.Name, "expected_type": string(rule.Type), "actual_type": "null"})
			}
			continue
		}

		switch rule.Type {
		case TypeDate:
			if actual != "string" {
				result.add(CodeDatatypeFailed,
					fmt.Sprintf("Field %s must be a date", rule.Name),
					map[string]any{"field": rule.Name, "expected_type": "date", "actual_type": actual})
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				continue
			}
			if _, err := domain.ParseDate(s); err != nil {
				result.add(CodeDatatypeFailed,
					fmt.Sprintf("Field %s must be a date", rule.Name),
					map[string]any{"field": rule.Name, "expected_type": "date", "actual_type": "string"})
			}
		case TypeString:
			if actual != "string" {
				result.add(CodeDatatypeFailed,
					fmt.Sprintf("Field %s must be a string", rule.Name),
					map[string]any{"field": rule.Name, "expected_type": "string", "actual_type": actual})
			}
			// Length is checked whenever the value is a string, independent
			// of the base type outcome.
			if actual == "string" && rule.MaxLength > 0 {
				var s string
				if err := json.Unmarshal(raw, &s); err != nil {
					continue
				}
				if n := utf8.RuneCountInString(s); n > rule.MaxLength {
					result.add(CodeDatatypeLength,
						fmt.Sprintf("Field %s exceeds the maximum length of %d", rule.Name, rule.MaxLength),
						map[string]any{"field": rule.Name, "max_length": rule.MaxLength, "actual_length": n})
				}
			}
		}
	}
}

func (c *Checker) checkTimeLogic(dbc dbctx.Context, rec domain.FactoryRecord, result *Result) error {
	start, end := rec.StartOperationDate, rec.EndOperationDate
	if !start.Before(end.Time) {
		result.add(CodeTimeLogicInvalid,
			"start_operation_date must be before end_operation_date",
			map[string]any{
				"start_operation_date": start.String(),
				"end_operation_date":   end.String(),
			})
		return nil
	}

	siblings, err := c.store.GetTimeRelated(dbc, rec.PreviousFactoryCode, rec.ProductFactoryCode, rec.CompanyCode)
	if err != nil {
		return err
	}
	for _, sib := range siblings {
		fullyBefore := end.Before(sib.StartOperationDate.Time)
		fullyAfter := start.After(sib.EndOperationDate.Time)
		if !fullyBefore && !fullyAfter {
			result.add(CodeTimeLogicConflicted,
				"The operation period conflicts with an existing record",
				sib.Key())
		}
	}
	return nil
}

func jsonTypeName(raw json.RawMessage) string {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '"':
			return "string"
		case '{':
			return "object"
		case '[':
			return "array"
		case 't', 'f':
			return "boolean"
		case 'n':
			return "null"
		default:
			return "number"
		}
	}
	return "null"
}
