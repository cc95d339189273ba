package strings

import "testing"

func TestBuilder(t *testing.T) {
	b := NewBuilder(8)
	b.WriteString("min=")
	b.WriteFloat(2.5, 1)
	b.WriteByte(' ')
	b.WriteString("max=10")

	if got := b.String(); got != "min=2.5 max=10" {
		t.Errorf("unexpected builder output: %q", got)
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("expected empty builder after reset, got len %d", b.Len())
	}
}

func TestSprintf(t *testing.T) {
	if got := Sprintf("no args"); got != "no args" {
		t.Errorf("expected passthrough for no args, got %q", got)
	}
	if got := Sprintf("field %s has %d values", "temp", 3); got != "field temp has 3 values" {
		t.Errorf("unexpected Sprintf output: %q", got)
	}
}

func TestConcat(t *testing.T) {
	if got := Concat(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := Concat("single"); got != "single" {
		t.Errorf("expected single, got %q", got)
	}
	if got := Concat("12.5", " ", "ms"); got != "12.5 ms" {
		t.Errorf("unexpected concat output: %q", got)
	}
}

func TestPooledBuilderReuse(t *testing.T) {
	b := GetBuilder()
	b.WriteString("stale content")
	PutBuilder(b)

	b2 := GetBuilder()
	if b2.Len() != 0 {
		t.Errorf("pooled builder not reset, len %d", b2.Len())
	}
	PutBuilder(b2)
}
