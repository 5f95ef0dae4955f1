package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--log-format", "json"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "class.json", `{"Mon": {"9am": ["Math"]}}`)
	b := write(t, dir, "new-courses.json", `{"Mon": {"9am": ["Physics"]}, "Tue": {"10am": ["Art"]}}`)
	out := filepath.Join(dir, "merged.json")

	stdout, _, err := run(t, "merge", a, b, "-o", out)
	require.NoError(t, err)
	assert.Equal(t, "Merged timetable saved to "+out+"\n", stdout)
	assert.Equal(t, `{
  "Mon": {
    "9am": [
      "Math",
      "Physics"
    ]
  },
  "Tue": {
    "10am": [
      "Art"
    ]
  }
}`, read(t, out))
}

func TestBareRunMergesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	write(t, dir, "class.json", `{"Mon": {"9am": ["Math"], "10am": []}}`)
	write(t, dir, "new-courses.json", `{"Mon": {"9am": [{"courseId": "CS", "room": "R1"}]}, "Tue": {"10am": ["Art"]}}`)

	stdout, _, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, "Merged timetable saved to merged.json\n", stdout)
	assert.Equal(t, `{
  "Mon": {
    "9am": [
      "Math",
      {
        "courseId": "CS",
        "room": "R1"
      }
    ],
    "10am": []
  },
  "Tue": {
    "10am": [
      "Art"
    ]
  }
}`, read(t, filepath.Join(dir, "merged.json")))
}

func TestMergeCommandUsesConfig(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.json", `{"Mon": {"9am": ["Math", "CS101"]}}`)
	b := write(t, dir, "b.yaml", "Mon:\n  9am: [CS102]\nTue:\n  10am: [Art]\n")
	out := filepath.Join(dir, "merged.json")
	cfg := write(t, dir, "ttmerge.yaml", "inputs: ["+a+", "+b+"]\noutput: "+out+"\nconverter: json\ncourses: [\"~^CS\"]\n")

	_, _, err := run(t, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, `{"Mon":{"9am":["CS101","CS102"]},"Tue":{"10am":[]}}`, read(t, out))
}

func TestMergeCommandCourseFlag(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.json", `{"Mon": {"9am": ["Math", "CS101"]}}`)
	b := write(t, dir, "b.json", `{"Mon": {"9am": ["Math"]}}`)
	out := filepath.Join(dir, "merged.json")

	_, _, err := run(t, "merge", a, b, "-o", out, "-f", "json", "--course", "Math")
	require.NoError(t, err)
	assert.Equal(t, `{"Mon":{"9am":["Math","Math"]}}`, read(t, out))
}

func TestMergeCommandErrors(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.json", `{"Mon": {}}`)
	bad := write(t, dir, "bad.json", `["Mon"]`)
	out := filepath.Join(dir, "merged.json")

	_, _, err := run(t, "merge", a, "-o", out)
	assert.ErrorContains(t, err, "at least two")

	_, _, err = run(t, "merge", a, filepath.Join(dir, "missing.json"), "-o", out)
	assert.Error(t, err)

	_, _, err = run(t, "merge", a, bad, "-o", out)
	assert.Error(t, err)

	_, _, err = run(t, "merge", a, a, "-o", out, "-f", "pdf")
	assert.Error(t, err)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "no output is written on failure")
}

func TestFilterCommand(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "class.json", `{"Mon": {"9am": [{"courseId": "CS101", "classroom": "R1", "classType": "Lab"}, "Math"]}}`)
	out := filepath.Join(dir, "mine.json")

	stdout, _, err := run(t, "filter", in, "-o", out, "-f", "json", "-s", "CS101")
	require.NoError(t, err)
	assert.Contains(t, stdout, out)
	assert.Equal(t, `{"Mon":{"9am":[{"courseId":"CS101","classroom":"R1","classType":"Lab"}]}}`, read(t, out))

	_, _, err = run(t, "filter", in, "-o", out)
	assert.ErrorContains(t, err, "--course")
}

func TestCoursesCommand(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.json", `{"Mon": {"9am": ["Math", "CS101"]}}`)
	b := write(t, dir, "b.json", `{"Tue": {"9am": ["Art", "Math"]}}`)

	stdout, _, err := run(t, "courses", a, b)
	require.NoError(t, err)
	assert.Equal(t, "Math\nCS101\nArt\n", stdout)
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "courses", "x.json")
	assert.ErrorContains(t, err, "loud")
}

func TestBadLogFormat(t *testing.T) {
	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stdout)
	root.SetArgs([]string{"--log-format", "xml", "courses", "x.json"})
	assert.Error(t, root.Execute())
}
