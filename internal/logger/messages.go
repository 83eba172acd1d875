package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// export
		"Exporting %dx%d source":       "%dx%d のソースを書き出し中",
		"Frame %dx%d, padding %.2f px": "フレーム %dx%d, 余白 %.2f px",
		"Encoded %d bytes":             "%d バイトにエンコードしました",
		"Export failed (%s): %s":       "書き出しに失敗しました (%s): %s",
		"Saved %s":                     "%s を保存しました",
		"Preview %dx%d":                "プレビュー %dx%d",

		// compositor
		"Allocating %dx%d surface": "%dx%d のサーフェスを確保中",
		"Stage %s":                 "ステージ %s",
		"Stage %s skipped":         "ステージ %s をスキップしました",

		// batch
		"Processing %d files with %d workers":     "%d ファイルを %d ワーカーで処理中",
		"Processed %s -> %s":                      "%s -> %s を処理しました",
		"Failed to process %s: %s":                "%s の処理に失敗しました: %s",
		"Batch finished: %d succeeded, %d failed": "バッチ完了: 成功 %d, 失敗 %d",
		"Interrupted, stopping batch":             "中断されました。バッチを停止します",

		// config
		"Loaded config from %s": "%s から設定を読み込みました",
	})
}
