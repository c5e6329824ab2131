package castprim

import "testing"

func TestStringCoversEveryPrimitive(t *testing.T) {
	for p := NOP; p <= DOUBLE_TO_FLOAT; p++ {
		if got := p.String(); got == "?" {
			t.Errorf("Primitive(%d).String() = %q, want a real name", int(p), got)
		}
	}
}

func TestDomains(t *testing.T) {
	tests := []struct {
		p        Primitive
		src, dst Domain
	}{
		{NOP, GPR, GPR},
		{INT8_TO_INT16, GPR, GPR},
		{PRESERVE_INT8, GPR, GPR},
		{INT32_TO_FLOAT, GPR, FPUTop},
		{INT32_TO_DOUBLE, GPR, FPUTop},
		{FLOAT_TO_INT32, FPUTop, GPR},
		{DOUBLE_TO_INT32, FPUTop, GPR},
		{FLOAT_TO_DOUBLE, FPUTop, FPUTop},
		{DOUBLE_TO_FLOAT, FPUTop, FPUTop},
	}
	for _, tt := range tests {
		if got := tt.p.SourceDomain(); got != tt.src {
			t.Errorf("%s.SourceDomain() = %s, want %s", tt.p, got, tt.src)
		}
		if got := tt.p.DestDomain(); got != tt.dst {
			t.Errorf("%s.DestDomain() = %s, want %s", tt.p, got, tt.dst)
		}
	}
}
