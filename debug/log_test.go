package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/qtree/ir"
)

func TestLogfRendersNodes(t *testing.T) {
	buf := &bytes.Buffer{}
	old := out
	out = buf
	defer func() { out = old }()

	n := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromString("1")}})
	Logf("tree %v at %s\n", n, "root")
	got := buf.String()
	if !strings.Contains(got, `"a": "1"`) {
		t.Errorf("node not rendered as json: %q", got)
	}
	if !strings.HasSuffix(got, "at root\n") {
		t.Errorf("plain args not passed through: %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("QT_TEST_FLAG", "true")
	if !boolEnv("QT_TEST_FLAG") {
		t.Error("expected true")
	}
	t.Setenv("QT_TEST_FLAG", "nope")
	if boolEnv("QT_TEST_FLAG") {
		t.Error("unparsable value should be false")
	}
	if boolEnv("QT_TEST_FLAG_UNSET") {
		t.Error("unset should be false")
	}
}
