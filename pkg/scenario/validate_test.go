package scenario

import "testing"

// TestValidateWellFormed 测试格式正确的剧本没有问题
func TestValidateWellFormed(t *testing.T) {
	script := NewScript([]string{
		"set bg room.png",
		"set char alice_closed.png",
		"Alice「Hello」",
		"set select",
		"1: Yes",
		"2: No",
		"select1 Alice「Sure」",
		"select2 Alice「No way」",
		"Bob「Next」",
	})

	if issues := Validate(script); len(issues) != 0 {
		t.Errorf("Validate() = %v, want no issues", issues)
	}
}

// TestValidateTargetLaterInScript 测试分支台词位于选项块之后的情况
func TestValidateTargetLaterInScript(t *testing.T) {
	script := NewScript([]string{
		"set select",
		"1: Yes",
		"2: No",
		"Bob「Hmm」",
		"select1 Alice「Sure」",
		"select2 Alice「No way」",
	})

	if issues := Validate(script); len(issues) != 0 {
		t.Errorf("Validate() = %v, want no issues", issues)
	}
}

// TestValidateProblems 测试各类格式问题
func TestValidateProblems(t *testing.T) {
	script := NewScript([]string{
		"set bg",           // 1: 缺少文件名
		"1: stray",         // 2: 块外选项
		"set select",       // 3: 空选项块
		"Alice「Hi」",        // 4
		"set select",       // 5
		"1: Yes",           // 6
		"1: Again",         // 7: 重复编号
		"2: No",            // 8: 缺少 select2
		"select1 Alice「A」", // 9
		"Bob「End」",         // 10
	})

	issues := Validate(script)

	want := []struct {
		line int
		sev  Severity
	}{
		{1, SeverityWarning},
		{2, SeverityWarning},
		{3, SeverityWarning},
		{7, SeverityWarning},
		{8, SeverityError},
	}

	if len(issues) != len(want) {
		t.Fatalf("Validate() returned %d issues, want %d: %v", len(issues), len(want), issues)
	}
	for i, w := range want {
		if issues[i].Line != w.line || issues[i].Severity != w.sev {
			t.Errorf("issue %d = %v, want line %d severity %s", i, issues[i], w.line, w.sev)
		}
	}
}

// TestValidateUnselectableTarget 测试标签不是 select<编号> 的分支台词
func TestValidateUnselectableTarget(t *testing.T) {
	script := NewScript([]string{
		"set select",              // 1
		"1: Yes",                  // 2
		"select1 Alice「Sure」",     // 3
		"selectA Alice「Never」",    // 4: 块内无法选中
		"Bob「Next」",               // 5
		"selected items are gone", // 6: 块外也会被跳过
	})

	issues := Validate(script)
	if len(issues) != 2 {
		t.Fatalf("Validate() returned %d issues, want 2: %v", len(issues), issues)
	}
	for i, line := range []int{4, 6} {
		if issues[i].Line != line || issues[i].Severity != SeverityWarning {
			t.Errorf("issue %d = %v, want warning at line %d", i, issues[i], line)
		}
	}
}

func TestIssueString(t *testing.T) {
	issue := Issue{Line: 3, Severity: SeverityError, Message: "boom"}
	if got := issue.String(); got != "3: error: boom" {
		t.Errorf("String() = %q", got)
	}
}
