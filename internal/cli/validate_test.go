package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMemoryFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestValidate_CleanFilePasses(t *testing.T) {
	path := writeMemoryFile(t, "ssot_clean_2026-01-01.md", `---
title: X
version: 0.1.0
updated: 2026-01-01
scope: all
category: ssot
subcategory: x
domain: [x]
changelog:
  - 0.1.0 (2026-01-01): Initial creation.
---

Body.
`)

	if err := runCLI(t, "", "validate", path); err != nil {
		t.Errorf("expected clean pass, got: %v", err)
	}
}

func TestValidate_WarningsDoNotFail(t *testing.T) {
	// Missing changelog in an ssot memory is advisory only.
	path := writeMemoryFile(t, "ssot_nochangelog_2026-01-01.md", `---
title: X
version: 0.1.0
updated: 2026-01-01
scope: all
category: ssot
subcategory: x
domain: [x]
---
`)

	if err := runCLI(t, "", "validate", path); err != nil {
		t.Errorf("warnings should not affect exit status, got: %v", err)
	}
}

func TestValidate_ErrorsFail(t *testing.T) {
	path := writeMemoryFile(t, "ssot_sparse.md", "---\ntitle: X\n---\n")

	if err := runCLI(t, "", "validate", path); err == nil {
		t.Error("expected failure for missing required fields")
	}
}

func TestValidate_MissingFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssot_nope.md")

	if err := runCLI(t, "", "validate", path); err == nil {
		t.Error("expected failure for missing file")
	}
}

func TestValidate_NoFrontmatterFails(t *testing.T) {
	path := writeMemoryFile(t, "ssot_bare.md", "# No metadata\n")

	if err := runCLI(t, "", "validate", path); err == nil {
		t.Error("expected failure for missing frontmatter")
	}
}

func TestValidateThenGenerateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "ssot_roundtrip_2026-01-20.md")

	if err := runCLI(t, "", "generate", "ssot", out, "title=Round Trip", "domain=testing"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := runCLI(t, "", "validate", out); err != nil {
		t.Errorf("generated ssot memory should validate cleanly, got: %v", err)
	}
}
