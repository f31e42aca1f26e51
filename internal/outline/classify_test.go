package outline

import "testing"

func TestClassify(t *testing.T) {
	assertClassified := func(line string, expKind LineKind, expLabel string, expLink string) {
		t.Helper()
		classified := Classify(line)
		if classified.Kind != expKind {
			t.Errorf("line %q classified as %c instead of %c", line, classified.Kind, expKind)
			return
		}
		if classified.Label != expLabel {
			t.Errorf("line %q yielded label %q instead of %q", line, classified.Label, expLabel)
		}
		if classified.Link != expLink {
			t.Errorf("line %q yielded link %q instead of %q", line, classified.Link, expLink)
		}
	}

	assertClassified("### Architecture", Section, "Architecture", "")
	assertClassified("#### Implementation Details", Subsection, "Implementation Details", "")
	assertClassified("### Trailing whitespace   ", Section, "Trailing whitespace", "")
	assertClassified("1. [Intro](intro.md)", Item, "Intro", "intro.md")
	assertClassified("12. [Some Title](path/to/file.md)", Item, "Some Title", "path/to/file.md")
	assertClassified("- [Preface](index.md)", Preface, "Preface", "index.md")
	assertClassified("---", Divider, "", "")
	assertClassified("--------", Divider, "", "")
	assertClassified("--- ", Divider, "", "")
}

func TestClassifyHeadingPrecedence(t *testing.T) {
	//a four-hash line must never be consumed as a three-hash prefix match
	if kind := Classify("#### deep heading").Kind; kind != Subsection {
		t.Errorf("four-hash heading classified as %c", kind)
	}
	if kind := Classify("### flat heading").Kind; kind != Section {
		t.Errorf("three-hash heading classified as %c", kind)
	}
}

func TestClassifyIgnoredLines(t *testing.T) {
	assertIgnored := func(line string) {
		t.Helper()
		if classified := Classify(line); classified.Kind != Ignore {
			t.Errorf("line %q classified as %c instead of being ignored", line, classified.Kind)
		}
	}

	assertIgnored("")
	assertIgnored("plain prose between entries")
	assertIgnored("# Title")
	assertIgnored("## chapter-level heading")
	assertIgnored("##### too deep")
	assertIgnored("###cramped")
	assertIgnored("###")
	assertIgnored("####   ")
	assertIgnored("--")
	assertIgnored("1. [unterminated bracket(intro.md)")
	assertIgnored("1. [unterminated parenthesis](intro.md")
	assertIgnored("1.missing space [x](y.md)")
	assertIgnored("- [unterminated front link](index.md")
	assertIgnored("- plain bullet without link")
}
