package chat

import "testing"

func TestFormat_Markers(t *testing.T) {
	text := "Today's plan:\n* Finish **rotation** PYQs\n- Revise mole concept\n\nKeep going!"

	blocks := Format(text)
	if len(blocks) != 5 {
		t.Fatalf("blocks = %d, want 5", len(blocks))
	}

	if blocks[0].Kind != Heading {
		t.Errorf("blocks[0].Kind = %v, want Heading", blocks[0].Kind)
	}
	if blocks[1].Kind != Bullet {
		t.Errorf("blocks[1].Kind = %v, want Bullet", blocks[1].Kind)
	}
	if blocks[2].Kind != Bullet {
		t.Errorf("blocks[2].Kind = %v, want Bullet", blocks[2].Kind)
	}
	if blocks[3].Kind != Spacer {
		t.Errorf("blocks[3].Kind = %v, want Spacer", blocks[3].Kind)
	}
	if blocks[4].Kind != Paragraph {
		t.Errorf("blocks[4].Kind = %v, want Paragraph", blocks[4].Kind)
	}

	// The bullet marker is stripped and the bold span isolated.
	spans := blocks[1].Spans
	if len(spans) != 3 {
		t.Fatalf("bullet spans = %d, want 3", len(spans))
	}
	if spans[0].Text != "Finish " || spans[0].Bold {
		t.Errorf("spans[0] = %+v, want plain %q", spans[0], "Finish ")
	}
	if spans[1].Text != "rotation" || !spans[1].Bold {
		t.Errorf("spans[1] = %+v, want bold %q", spans[1], "rotation")
	}
	if spans[2].Text != " PYQs" || spans[2].Bold {
		t.Errorf("spans[2] = %+v, want plain %q", spans[2], " PYQs")
	}
}

func TestFormat_UnmatchedBoldIsLiteral(t *testing.T) {
	blocks := Format("a **broken marker")
	if len(blocks) != 1 || len(blocks[0].Spans) != 1 {
		t.Fatalf("blocks = %+v, want one literal span", blocks)
	}
	if blocks[0].Spans[0].Text != "a **broken marker" || blocks[0].Spans[0].Bold {
		t.Errorf("span = %+v, want literal text", blocks[0].Spans[0])
	}
}

func TestFormat_WholeLineBold(t *testing.T) {
	blocks := Format("**all bold**")
	if len(blocks[0].Spans) != 1 || !blocks[0].Spans[0].Bold || blocks[0].Spans[0].Text != "all bold" {
		t.Errorf("spans = %+v, want single bold span", blocks[0].Spans)
	}
}

func TestFormat_IndentedBulletTrimmed(t *testing.T) {
	blocks := Format("   * indented")
	if blocks[0].Kind != Bullet {
		t.Errorf("Kind = %v, want Bullet after trimming indent", blocks[0].Kind)
	}
}
