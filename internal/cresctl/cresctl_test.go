package cresctl

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestBuildJson(t *testing.T) {
	expansions := []*expansion{
		{kind: "core", spec: "0-3", count: 4, ids: []uint64{0, 1, 2, 3}},
		{kind: "task", spec: "0x10-12", count: 3, ids: []uint64{16, 17, 18}},
	}

	out := buildJson("os", "core", expansions)
	if !gjson.Valid(out) {
		t.Fatalf("invalid JSON: %s", out)
	}

	if got := gjson.Get(out, "interface").String(); got != "os" {
		t.Fatalf("interface = %q, want \"os\"", got)
	}
	if got := gjson.Get(out, "cores.count").Uint(); got != 4 {
		t.Fatalf("cores.count = %d, want 4", got)
	}
	if got := gjson.Get(out, "tasks.ids").String(); got != "[16,17,18]" {
		t.Fatalf("tasks.ids = %s", got)
	}
	if got := gjson.Get(out, "tasks.spec").String(); got != "0x10-12" {
		t.Fatalf("tasks.spec = %q", got)
	}
}

func TestBuildJsonEmpty(t *testing.T) {
	out := buildJson("msr", "pid", nil)
	if !gjson.Valid(out) {
		t.Fatalf("invalid JSON: %s", out)
	}
	if gjson.Get(out, "cores").Exists() {
		t.Fatalf("unexpected cores section: %s", out)
	}
	if got := gjson.Get(out, "allocationMode").String(); got != "pid" {
		t.Fatalf("allocationMode = %q, want \"pid\"", got)
	}
}
