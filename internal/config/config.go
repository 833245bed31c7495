package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	FEURL string // フロントURL（CORSで許可するオリジン）
}

// Loadは環境変数（DB接続はinfra/dbが直接読む）
func Load() Config {
	return Config{
		Port:  getenv("PORT", "8080"),
		FEURL: getenv("FE_URL", "http://localhost:4200"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
