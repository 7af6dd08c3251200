package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/kinmath/spatialmath"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run(append([]string{"twist"}, args...))
	return out.String(), err
}

func TestDescribeAction(t *testing.T) {
	out, err := runApp(t, "--coords", "0,-1,0,0,0,1; 1 0 0", "describe")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, strings.Join([]string{
		"twist 0: ( 0 -1 0 ; 0 0 1 )",
		"  dimension: SE3",
		"  theta: 1",
		"  pitch: 0",
		"  point: 1 0 0",
		"  line: { 0 0 1 ; 0 1 0 }",
		"twist 1: ( 1 0 ; 0 )",
		"  dimension: SE2",
		"  theta: 0",
		"  pitch: 0",
		"  point: none (pure translation)",
		"",
	}, "\n"))
}

func TestExpAction(t *testing.T) {
	out, err := runApp(t, "--coords", "1 2 0", "exp")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "twist 0: ( 1 2 ; 0 )\n  [1 0 1]\n  [0 1 2]\n  [0 0 1]\n")

	// the translation is normalized before moving theta along it
	out, err = runApp(t, "--coords", "2,0,0,0,0,0", "--theta", "3", "exp")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual,
		"twist 0: ( 2 0 0 ; 0 0 0 )\n  [1 0 0 3]\n  [0 1 0 0]\n  [0 0 1 0]\n  [0 0 0 1]\n")
}

func TestExpActionInputTheta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twists.json5")
	doc := `{twists: [{descriptor: {kind: "translation", direction: [0, 1]}}], theta: 4}`
	test.That(t, os.WriteFile(path, []byte(doc), 0o600), test.ShouldBeNil)

	out, err := runApp(t, "-i", path, "exp")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "twist 0: ( 0 1 ; 0 )\n  [1 0 0]\n  [0 1 4]\n  [0 0 1]\n")

	// the flag wins over the file
	out, err = runApp(t, "-i", path, "--theta", "1", "exp")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "[0 1 1]")
}

func TestSumAction(t *testing.T) {
	out, err := runApp(t, "--coords", "1,2,3,0,0,1; 1,0,0,0,0,1", "sum")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "( 2 2 3 ; 0 0 2 )\n")

	_, err = runApp(t, "--coords", "1,0,0; 1,0,0,0,0,0", "sum")
	test.That(t, errors.Is(err, spatialmath.ErrInvalidOperand), test.ShouldBeTrue)
}

func TestActionErrors(t *testing.T) {
	_, err := runApp(t, "describe")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no twists given")

	// valid twists are still printed
	out, err := runApp(t, "--coords", "1,2,3,4; 0,0,1", "--debug", "describe")
	test.That(t, errors.Is(err, spatialmath.ErrInvalidArgument), test.ShouldBeTrue)
	test.That(t, out, test.ShouldStartWith, "twist 0: ( 0 0 ; 1 )")

	_, err = runApp(t, "-i", filepath.Join(t.TempDir(), "missing.json5"), "describe")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twist.log")
	_, err := runApp(t, "--log-file", path, "--coords", "1,2,3", "describe")
	test.That(t, err, test.ShouldBeNil)
	contents, err := os.ReadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(contents), test.ShouldContainSubstring, "built twists")
}

func TestVelocityAction(t *testing.T) {
	out, err := runApp(t, "--coords", "1,0,0,0,0,0; 3,0,0,0,0,0; 3,1,0", "velocity", "--dt", "0.5")
	test.That(t, out, test.ShouldEqual, "0 -> 1: ( 4 0 0 ; 0 0 0 )\n")
	test.That(t, errors.Is(err, spatialmath.ErrInvalidArgument), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "poses 1 to 2")

	_, err = runApp(t, "--coords", "1,0,0", "velocity")
	test.That(t, err.Error(), test.ShouldContainSubstring, "at least two twists")
}

func TestDescribeTable(t *testing.T) {
	out, err := runApp(t, "--coords", "0,-1,0,0,0,1; 1 0 0", "describe", "--table")
	test.That(t, err, test.ShouldBeNil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// borders, header, separator and one row per twist
	test.That(t, lines, test.ShouldHaveLength, 6)
	test.That(t, lines[1], test.ShouldContainSubstring, "TWIST")
	test.That(t, lines[3], test.ShouldContainSubstring, "( 0 -1 0 ; 0 0 1 )")
	test.That(t, lines[3], test.ShouldContainSubstring, "1 0 0")
	test.That(t, lines[4], test.ShouldContainSubstring, "SE2")
	test.That(t, lines[4], test.ShouldContainSubstring, "none")
}

func TestDegrees(t *testing.T) {
	out, err := runApp(t, "--coords", "0 2 0", "--theta", "90", "--degrees", "exp")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "twist 0: ( 0 2 ; 0 )\n  [1 0 0]\n  [0 1 1.5708]\n  [0 0 1]\n")

	out, err = runApp(t, "--coords", "0 0 2", "--degrees", "describe")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "  theta: 114.59\n")

	out, err = runApp(t, "--coords", "0 0 2", "--degrees", "describe", "--table")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "114.59")
}

func TestComposeAction(t *testing.T) {
	out, err := runApp(t, "--coords", "1 0 0; 0 1 0", "compose")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "( 1 1 ; 0 )\n")

	_, err = runApp(t, "--coords", "1,0,0; 1,0,0,0,0,0", "compose")
	test.That(t, errors.Is(err, spatialmath.ErrInvalidOperand), test.ShouldBeTrue)
}
