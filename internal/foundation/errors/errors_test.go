package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("builder fields", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "folio.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if file, ok := err.Context().GetString("file"); !ok || file != "folio.yaml" {
			t.Errorf("expected context file=folio.yaml, got %v", file)
		}
	})

	t.Run("error string", func(t *testing.T) {
		plain := SchemaError(nil, "entry invalid").Build()
		if got := plain.Error(); got != "[schema:fatal] entry invalid" {
			t.Errorf("Error() = %q", got)
		}
		schema := SchemaError(fmt.Errorf("title: required"), "content validation failed").Build()
		if got := schema.Error(); got != "[schema:fatal] content validation failed: title: required" {
			t.Errorf("Error() = %q", got)
		}
		if schema.CanRetry() {
			t.Error("schema errors need user action")
		}
		wrapped := WrapError(fmt.Errorf("boom"), CategoryInternal, "failed").Build()
		if got := wrapped.Error(); got != "[internal:error] failed: boom" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("WithContext copies", func(t *testing.T) {
		base := GitError("dirty worktree").Build()
		derived := base.WithContext("root", "/site")
		if _, ok := base.Context().Get("root"); ok {
			t.Error("WithContext mutated the original error")
		}
		if root, _ := derived.Context().GetString("root"); root != "/site" {
			t.Errorf("derived root = %q", root)
		}
	})
}

func TestFileSystemError(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := FileSystemError(cause, "write", "src/card.astro").Build()

	if !err.IsFatal() {
		t.Error("filesystem errors abort the run")
	}
	if err.CanRetry() {
		t.Error("filesystem errors are not retryable")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected cause in chain")
	}
	if op, _ := err.Context().GetString("operation"); op != "write" {
		t.Errorf("operation = %q", op)
	}
}

func TestAsClassified_FindsWrapped(t *testing.T) {
	inner := ConfigError("bad rules").Build()
	outer := fmt.Errorf("loading: %w", inner)

	ce, ok := AsClassified(outer)
	if !ok || ce != inner {
		t.Fatalf("AsClassified did not unwrap")
	}
	if !HasCategory(outer, CategoryConfig) {
		t.Error("expected config category through wrapping")
	}
	if GetCategory(fmt.Errorf("plain")) != CategoryInternal {
		t.Error("plain errors default to internal")
	}
}

func TestIs_ComparesCategoryAndMessage(t *testing.T) {
	a := NewError(CategoryNotFound, "root missing").Build()
	b := NewError(CategoryNotFound, "root missing").WithContext("path", "x").Build()
	c := NewError(CategoryNotFound, "other").Build()

	if !stderrors.Is(a, b) {
		t.Error("expected a to match b")
	}
	if stderrors.Is(a, c) {
		t.Error("expected a not to match c")
	}
}

func TestErrorContext_Merge(t *testing.T) {
	var empty ErrorContext
	merged := empty.Merge(ErrorContext{"a": 1})
	if v, _ := merged.Get("a"); v != 1 {
		t.Errorf("merge into nil lost value: %v", v)
	}
	over := ErrorContext{"a": 1, "b": 2}.Merge(ErrorContext{"a": 3})
	if v, _ := over.Get("a"); v != 3 {
		t.Errorf("other should win, got %v", v)
	}
}
