package services

import "testing"

func TestSupportedLanguages_SortedAndComplete(t *testing.T) {
	langs := SupportedLanguages()
	if len(langs) != 6 {
		t.Fatalf("got %d languages", len(langs))
	}
	for i := 1; i < len(langs); i++ {
		if langs[i-1].Code >= langs[i].Code {
			t.Fatalf("languages not sorted: %q before %q", langs[i-1].Code, langs[i].Code)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	for in, want := range map[string]string{
		"en":    "en",
		"EN":    "en",
		"zh-CN": "zh-CN",
		"zh-cn": "zh-CN",
		" fr ":  "fr",
		"":      "",
	} {
		got, err := NormalizeLanguage(in)
		if err != nil {
			t.Fatalf("NormalizeLanguage(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"xx", "no", "!!", "en-US"} {
		if _, err := NormalizeLanguage(in); err != ErrLanguageInvalid {
			t.Fatalf("NormalizeLanguage(%q) err = %v, want ErrLanguageInvalid", in, err)
		}
	}
}
