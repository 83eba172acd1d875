package main

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Exporting %s":       "%s を書き出し中",
		"Done: %s (%dms)":    "完了: %s (%dms)",
		"Output saved to %s": "出力を %s に保存しました",
	})
}
