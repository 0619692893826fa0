package docs

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const buttonDoc = `# Button

Buttons help people take action.

## API

| Property | Attribute | Type | Default | Description |
|---|---|---|---|---|
| disabled | disabled | boolean | false | Whether the button is disabled |
| label | label | string | '' | The button label |

## Accessibility

Not part of the API section.
`

func Test_Store_ExtractAPI_Table(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"components/button.md": buttonDoc,
	})

	descriptor := s.ExtractAPI(context.Background(), "button")
	if descriptor == nil {
		t.Fatal("expected a descriptor")
	}
	want := []string{"disabled", "label"}
	if !slices.Equal(descriptor.Properties, want) {
		t.Errorf("expected %v, got %v", want, descriptor.Properties)
	}
}

func Test_Store_ExtractAPI_NoSection(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"components/divider.md": "# Divider\n\nNo API heading here.\n",
	})

	if descriptor := s.ExtractAPI(context.Background(), "divider"); descriptor != nil {
		t.Errorf("expected nil for a document without an API section, got %+v", descriptor)
	}
}

func Test_Store_ExtractAPI_EmptyTable(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"components/spacer.md": "## API\n\n| Property | Attribute | Type | Default | Description |\n|---|---|---|---|---|\n",
	})

	descriptor := s.ExtractAPI(context.Background(), "spacer")
	if descriptor == nil {
		t.Fatal("expected an empty descriptor, not nil")
	}
	if len(descriptor.Properties) != 0 {
		t.Errorf("expected no properties, got %v", descriptor.Properties)
	}
}

func Test_Store_ExtractAPI_MultipleTables(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"components/chip.md": `## API

| Property | Attribute | Type | Default | Description |
|---|---|---|---|---|
| label | label | string | '' | Label |

Some prose between tables.

| Property | Attribute | Type | Default | Description |
|---|---|---|---|---|
| elevated | elevated | boolean | false | Elevated |
| avatar |  | boolean | false | No attribute cell |
`,
	})

	descriptor := s.ExtractAPI(context.Background(), "chip")
	if descriptor == nil {
		t.Fatal("expected a descriptor")
	}
	want := []string{"label", "elevated"}
	if !slices.Equal(descriptor.Properties, want) {
		t.Errorf("expected %v, got %v", want, descriptor.Properties)
	}
}

func Test_Store_ExtractAPI_SectionEndsAtCommentMarker(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"components/fab.md": `## API

| Property | Attribute | Type | Default | Description |
|---|---|---|---|---|
| lowered | lowered | boolean | false | Lowered |

<!-- auto-generated below -->

| Property | Attribute | Type | Default | Description |
|---|---|---|---|---|
| ignored | ignored | boolean | false | Outside the section |
`,
	})

	descriptor := s.ExtractAPI(context.Background(), "fab")
	if descriptor == nil {
		t.Fatal("expected a descriptor")
	}
	if !slices.Equal(descriptor.Properties, []string{"lowered"}) {
		t.Errorf("expected [lowered], got %v", descriptor.Properties)
	}
}

func Test_Store_ExtractAPI_BlankName(t *testing.T) {
	s := newTestStore(t, nil)

	if descriptor := s.ExtractAPI(context.Background(), "  "); descriptor != nil {
		t.Errorf("expected nil for blank name, got %+v", descriptor)
	}
}

func Test_Store_ExtractAPI_CachedUntilRefresh(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"components/button.md": buttonDoc,
	})
	ctx := context.Background()

	first := s.ExtractAPI(ctx, "button")
	if first == nil {
		t.Fatal("expected a descriptor")
	}

	// Deleting the document must not evict the cached descriptor.
	if err := os.Remove(filepath.Join(s.Root(), "components", "button.md")); err != nil {
		t.Fatalf("removing doc: %v", err)
	}

	second := s.ExtractAPI(ctx, "button")
	if second == nil || !slices.Equal(second.Properties, first.Properties) {
		t.Errorf("expected cached descriptor, got %+v", second)
	}

	// Refresh drops the API cache along with the document list.
	s.Refresh()
	if third := s.ExtractAPI(ctx, "button"); third != nil {
		t.Errorf("expected nil after refresh with doc gone, got %+v", third)
	}
}
