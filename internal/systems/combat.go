package systems

import (
	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ApplyDamage subtracts amount from the player's health (clamped at 0) and
// reports whether the player went down. source is for the log only.
func ApplyDamage(p *domain.PlayerState, amount int, source string) bool {
	hpBefore := p.Health
	died := p.TakeDamage(amount)

	logger.Component("combat_system").WithFields(logrus.Fields{
		"source":    source,
		"amount":    amount,
		"hp_before": hpBefore,
		"hp_after":  p.Health,
		"died":      died,
	}).Debug("Damage resolved.")

	return died
}
