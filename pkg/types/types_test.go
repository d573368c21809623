package types

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in      string
		want    Operation
		wantErr bool
	}{
		{"add", OpAdd, false},
		{"+", OpAdd, false},
		{" Subtract ", OpSubtract, false},
		{"x", OpMultiply, false},
		{"*", OpMultiply, false},
		{":", OpDivide, false},
		{"divide", OpDivide, false},
		{"modulo", OpAdd, true},
	}

	for _, tt := range tests {
		got, err := ParseOperation(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOperation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseOperation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOperationSymbol(t *testing.T) {
	want := map[Operation]string{OpAdd: "+", OpSubtract: "-", OpMultiply: "x", OpDivide: ":"}
	for op, sym := range want {
		if op.Symbol() != sym {
			t.Errorf("%v.Symbol() = %q, want %q", op, op.Symbol(), sym)
		}
	}
}

func TestPowerUpTypeRoundTrip(t *testing.T) {
	// 名称和短标签都应能解析回同一类型
	for _, p := range AllPowerUpTypes {
		got, err := ParsePowerUpType(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePowerUpType(%q) = %v, %v", p.String(), got, err)
		}
		got, err = ParsePowerUpType(p.Label())
		if err != nil || got != p {
			t.Errorf("ParsePowerUpType(%q) = %v, %v", p.Label(), got, err)
		}
	}
}

func TestPowerUpTypeUnmarshalYAML(t *testing.T) {
	var doc struct {
		Types []PowerUpType `yaml:"types"`
	}
	src := "types: [ghost, rapid_fire, FIX]\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := []PowerUpType{PowerUpGhost, PowerUpRapidFire, PowerUpRoundNum}
	if len(doc.Types) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(doc.Types))
	}
	for i := range want {
		if doc.Types[i] != want[i] {
			t.Errorf("types[%d] = %v, want %v", i, doc.Types[i], want[i])
		}
	}

	if err := yaml.Unmarshal([]byte("types: [warp]\n"), &doc); err == nil {
		t.Error("expected error for unknown power-up type")
	}
}
