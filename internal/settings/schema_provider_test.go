package settings

import "testing"

func TestSchemaProvider_GetSchemaCoversEveryCategory(t *testing.T) {
	m, _ := newTempManager(t)
	provider := NewSchemaProvider(m)

	keys := provider.GetSchema()
	if len(keys) == 0 {
		t.Fatalf("expected a non-empty schema")
	}

	sections := map[string]bool{}
	for _, k := range keys {
		sections[k.Section] = true
	}
	for _, want := range []string{SectionTheme, SectionUI, SectionWorkspace, SectionTerminal, SectionKeyboard} {
		if !sections[want] {
			t.Fatalf("expected section %q to be represented in the schema", want)
		}
	}
}
