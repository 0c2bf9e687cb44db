package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestListShowsBothGames(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	runList(listCmd, nil)

	out := buf.String()
	for _, want := range []string{"mario", "Super Mario Mini", "keyboard", "ninja", "Fruit Ninja Mini", "mouse"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output is missing %q:\n%s", want, out)
		}
	}
}

func TestCheckDifficulty(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if err := checkDifficulty(ok); err != nil {
			t.Errorf("checkDifficulty(%q) = %v", ok, err)
		}
	}
	if err := checkDifficulty("nightmare"); err == nil {
		t.Error("unknown difficulty should be rejected")
	}
}
