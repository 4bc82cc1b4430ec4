// Package announcer holds the localized event commentary banks.
//
// Every observable match event maps to a message key; each key has several
// variants and the match RNG picks one so commentary stays deterministic per
// seed. Rendering resolves the requested locale with base-locale fallback.
package announcer

import "golang.org/x/text/language"

// BaseLocale is the canonical source locale for commentary.
const BaseLocale = "en-US"

// Message keys, one per commentary bank.
const (
	KeyGoalPlayer = "goal_player"
	KeyGoalAI     = "goal_ai"
	KeyBoost      = "boost"
	KeyHazard     = "hazard"
	KeyLowTime    = "low_time"
	KeyVictory    = "victory"
	KeyDefeat     = "defeat"
	KeyDraw       = "draw"
)

type bank map[string][]string

var catalogs = map[string]bank{
	"en-US": {
		KeyGoalPlayer: {
			"Nice shot! The portal bends to your will.",
			"Ball threaded through — clean strike!",
			"Goal! The cosmos acknowledges your aim.",
			"Lethal vector. AI defensive algorithm updating.",
		},
		KeyGoalAI: {
			"AI intercept successful. Recalibrating.",
			"Defence miscalculated. Regroup immediately.",
			"AI scored. Boost reserves and push forward.",
			"The drone found the gap. Don't let it again.",
		},
		KeyBoost: {
			"Boost pad acquired. Maximum thrust online.",
			"Fuel reserves topped. Push the pace now.",
		},
		KeyHazard: {
			"Hazard contact! Trajectory destabilised.",
			"Warning: anomaly interference detected.",
			"Field distortion — correct your heading!",
		},
		KeyLowTime: {
			"30 SECONDS REMAINING. Don't hold back.",
			"Final stretch. Every goal counts double.",
		},
		KeyVictory: {"MISSION COMPLETE. Galactic record updated."},
		KeyDefeat:  {"MISSION FAILED. AI wins this sector."},
		KeyDraw:    {"STALEMATE. The void remains unclaimed."},
	},
	"pt-BR": {
		KeyGoalPlayer: {
			"Belo chute! O portal se curva à sua vontade.",
			"Bola costurada no meio — golpe limpo!",
			"Gol! O cosmos reconhece sua mira.",
			"Vetor letal. Algoritmo defensivo da IA atualizando.",
		},
		KeyGoalAI: {
			"Interceptação da IA bem-sucedida. Recalibrando.",
			"Defesa calculou errado. Reagrupe imediatamente.",
			"A IA marcou. Recupere impulso e avance.",
			"O drone achou a brecha. Não deixe de novo.",
		},
		KeyBoost: {
			"Plataforma de impulso adquirida. Propulsão máxima ativa.",
			"Reservas de combustível cheias. Acelere o ritmo agora.",
		},
		KeyHazard: {
			"Contato com perigo! Trajetória desestabilizada.",
			"Aviso: interferência de anomalia detectada.",
			"Distorção de campo — corrija seu rumo!",
		},
		KeyLowTime: {
			"30 SEGUNDOS RESTANTES. Não segure nada.",
			"Reta final. Cada gol conta em dobro.",
		},
		KeyVictory: {"MISSÃO COMPLETA. Recorde galáctico atualizado."},
		KeyDefeat:  {"MISSÃO FALHOU. A IA vence este setor."},
		KeyDraw:    {"EMPATE. O vazio permanece sem dono."},
	},
}

// supportedLocales is ordered; the first entry is the matcher default.
var supportedLocales = []string{"en-US", "pt-BR"}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supportedLocales))
	for _, locale := range supportedLocales {
		tags = append(tags, language.MustParse(locale))
	}
	return language.NewMatcher(tags)
}()

// VariantCount returns the number of lines in the base-locale bank for key.
func VariantCount(key string) int {
	return len(catalogs[BaseLocale][key])
}

// Line renders the variant of a message key for the best-matching locale.
// Unknown keys render empty; out-of-range variants clamp to the bank.
func Line(locale, key string, variant int) string {
	resolved := BaseLocale
	if tag, err := language.Parse(locale); err == nil {
		_, idx, _ := matcher.Match(tag)
		resolved = supportedLocales[idx]
	}

	lines := catalogs[resolved][key]
	if len(lines) == 0 {
		lines = catalogs[BaseLocale][key]
	}
	if len(lines) == 0 {
		return ""
	}
	if variant < 0 || variant >= len(lines) {
		variant = 0
	}
	return lines[variant]
}
