package onedrive

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// TimeLayout is the provider's timestamp format, e.g. 2014-05-01T10:15:00+0000.
const TimeLayout = "2006-01-02T15:04:05-0700"

var errMissingField = errors.New("required field is missing")

// fieldReader extracts typed values from a Tree. The first failure is kept
// in err and every later read becomes a no-op, so a mapper can read all of
// its fields and check err once.
type fieldReader struct {
	kind string
	tree Tree
	err  error
}

func newFieldReader(kind string, tree Tree) *fieldReader {
	return &fieldReader{kind: kind, tree: tree}
}

func (r *fieldReader) fail(key string, err error) {
	if r.err == nil {
		r.err = &MappingError{Kind: r.kind, Field: key, Err: err}
	}
}

// lookup returns the value at key; present is false for an absent key or a
// JSON null.
func (r *fieldReader) lookup(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.tree[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *fieldReader) required(key string) (any, bool) {
	v, ok := r.lookup(key)
	if !ok {
		r.fail(key, errMissingField)
	}
	return v, ok
}

func (r *fieldReader) str(key string) string {
	v, ok := r.required(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, fmt.Errorf("expected string, got %T", v))
	}
	return s
}

func (r *fieldReader) optStr(key string) *string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, fmt.Errorf("expected string, got %T", v))
		return nil
	}
	return &s
}

func (r *fieldReader) float(key string) float64 {
	v, ok := r.required(key)
	if !ok {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		r.fail(key, fmt.Errorf("expected number, got %T", v))
	}
	return f
}

// integer truncates toward zero; 12.9 becomes 12.
func (r *fieldReader) integer(key string) int {
	n := r.int64(key)
	if n > math.MaxInt || n < math.MinInt {
		r.fail(key, fmt.Errorf("%d is out of range", n))
		return 0
	}
	return int(n)
}

func (r *fieldReader) int64(key string) int64 {
	f := r.float(key)
	if r.err != nil {
		return 0
	}
	n, err := truncate(f)
	if err != nil {
		r.fail(key, err)
		return 0
	}
	return n
}

// truncate converts f toward zero, rejecting values an int64 cannot hold.
func truncate(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not a finite number", f)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%v is out of range", f)
	}
	return int64(f), nil
}

func (r *fieldReader) boolean(key string) bool {
	v, ok := r.required(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.fail(key, fmt.Errorf("expected boolean, got %T", v))
	}
	return b
}

func (r *fieldReader) time(key string) time.Time {
	s := r.str(key)
	if r.err != nil {
		return time.Time{}
	}
	return r.parseTime(key, s)
}

func (r *fieldReader) optTime(key string) *time.Time {
	s := r.optStr(key)
	if s == nil {
		return nil
	}
	t := r.parseTime(key, *s)
	if r.err != nil {
		return nil
	}
	return &t
}

func (r *fieldReader) parseTime(key, value string) time.Time {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		r.fail(key, err)
		return time.Time{}
	}
	return t
}

func (r *fieldReader) object(key string) Tree {
	v, ok := r.required(key)
	if !ok {
		return nil
	}
	return r.asObject(key, v)
}

// optObject returns nil when key is absent or null.
func (r *fieldReader) optObject(key string) Tree {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	return r.asObject(key, v)
}

func (r *fieldReader) asObject(key string, v any) Tree {
	m, ok := v.(map[string]any)
	if !ok {
		r.fail(key, fmt.Errorf("expected object, got %T", v))
		return nil
	}
	return m
}

// list returns an empty, non-nil slice when key is absent or null.
func (r *fieldReader) list(key string) []any {
	v, ok := r.lookup(key)
	if !ok {
		return []any{}
	}
	l, ok := v.([]any)
	if !ok {
		r.fail(key, fmt.Errorf("expected array, got %T", v))
		return []any{}
	}
	return l
}

// nested runs fn against a sub-object and folds its failure into r, with
// the field path prefixed by key.
func (r *fieldReader) nested(key string, sub Tree, fn func(*fieldReader)) {
	if r.err != nil || sub == nil {
		return
	}
	inner := newFieldReader(r.kind, sub)
	fn(inner)
	if inner.err != nil {
		var mErr *MappingError
		if errors.As(inner.err, &mErr) {
			r.fail(key+"."+mErr.Field, mErr.Err)
			return
		}
		r.fail(key, inner.err)
	}
}

// discriminator reports whether the tree's "type" equals want. A missing or
// non-string type does not match.
func discriminator(tree Tree, want string) bool {
	t, ok := tree["type"].(string)
	return ok && t == want
}
