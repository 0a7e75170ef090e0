package telegram

import "testing"

func TestInlineMarkupPreservesOrder(t *testing.T) {
	rows := [][]Btn{
		Row(Btn{Text: "A", Action: "a"}, Btn{Text: "B", Action: "b"}),
		Row(Btn{Text: "C", Action: "c"}),
	}
	markup := InlineMarkup(rows)
	if markup == nil {
		t.Fatal("expected markup")
	}
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d", len(markup.InlineKeyboard))
	}
	if markup.InlineKeyboard[0][1].Text != "B" {
		t.Fatalf("button order lost: %+v", markup.InlineKeyboard[0])
	}
	if markup.InlineKeyboard[1][0].Unique != "c" {
		t.Fatalf("action key lost: %+v", markup.InlineKeyboard[1][0])
	}
}

func TestInlineMarkupEmpty(t *testing.T) {
	if InlineMarkup(nil) != nil {
		t.Fatal("nil rows should yield no markup")
	}
	if InlineMarkup([][]Btn{{}, {}}) != nil {
		t.Fatal("all-empty rows should yield no markup")
	}
}

func TestChunkButtons(t *testing.T) {
	buttons := []Btn{{Action: "1"}, {Action: "2"}, {Action: "3"}, {Action: "4"}, {Action: "5"}}
	rows := ChunkButtons(buttons, 2)
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	if len(rows[0]) != 2 || len(rows[2]) != 1 {
		t.Fatalf("chunk sizes wrong: %v", rows)
	}

	rows = ChunkButtons(buttons, 0)
	if len(rows) != 5 {
		t.Fatalf("n<=1 should produce one button per row, got %d rows", len(rows))
	}
}
