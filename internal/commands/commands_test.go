package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/firebird-suite/perch"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot() *cobra.Command {
	root := RootCmd()
	root.AddCommand(LoopCmd())
	root.AddCommand(ConfigCmd())
	return root
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newTestRoot()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRoot_CapturesToDefaultPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "hello world\n")
	require.NoError(t, err)

	assert.Equal(t, "hello world", readFile(t, filepath.Join(dir, "user_command.txt")))
	assert.Contains(t, out, "请输入您的指令 (输入 'stop' 退出):")
	assert.Contains(t, out, "您输入的内容: hello world")
}

func TestRoot_EmptyStdinWritesHelp(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "")
	require.NoError(t, err)

	assert.Equal(t, "help", readFile(t, filepath.Join(dir, "user_command.txt")))
	assert.Contains(t, out, "无法读取输入")
}

func TestRoot_OutputFlag(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "cmd.txt")

	_, err := execute(t, "first\n", "--output", path)
	require.NoError(t, err)
	_, err = execute(t, "second\n", "-o", path)
	require.NoError(t, err)

	assert.Equal(t, "second", readFile(t, path))
}

func TestRoot_ConfigFileOutput(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("perch.yml", []byte("output: from-config.txt\n"), 0644))

	_, err := execute(t, "via config\n")
	require.NoError(t, err)

	assert.Equal(t, "via config", readFile(t, filepath.Join(dir, "from-config.txt")))
}

func TestRoot_UnwritableOutputFails(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := execute(t, "x\n", "--output", dir)

	assert.Error(t, err)
}

func TestRoot_RejectsArgs(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "", "unexpected")

	assert.Error(t, err)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "", "--log-level", "loud")

	assert.Error(t, err)
}

func TestLoop_RunsUntilStop(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "status\nstop\n", "loop")
	require.NoError(t, err)

	assert.Contains(t, out, "=== 交互式任务循环启动 ===")
	assert.Contains(t, out, "系统状态: 正常运行")
	assert.Contains(t, out, "退出任务循环。")
	assert.Equal(t, "stop", readFile(t, filepath.Join(dir, "user_command.txt")))
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "", "config", "init")
	require.NoError(t, err)

	assert.Contains(t, out, "Wrote perch.yml")
	assert.Contains(t, readFile(t, filepath.Join(dir, "perch.yml")), "output: user_command.txt")
}

func TestConfigInit_DeclineOverwrite(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("project: keep\n"), 0644))

	out, err := execute(t, "n\n", "config", "init", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Kept existing")
	assert.Equal(t, "project: keep\n", readFile(t, path))
}

func TestConfigInit_Force(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("project: old\n"), 0644))

	_, err := execute(t, "", "config", "init", path, "--force")
	require.NoError(t, err)

	assert.Contains(t, readFile(t, path), "project: steamed-bun-task")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)

	assert.Equal(t, "perch v"+perch.Version+"\n", out)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
