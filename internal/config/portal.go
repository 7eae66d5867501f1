package config

type Portal struct {
	DocHost           string `env:"DOC_HOST,expand" envDefault:"infoproducts.alcatel-lucent.com"`
	LoginURL          string `env:"LOGIN_URL,expand" envDefault:"https://market.alcatel-lucent.com/login.fcc"`
	SynthesizedFamily string `env:"SYNTHESIZED_FAMILY" envDefault:"nuage"`
}
