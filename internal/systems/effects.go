package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
	"github.com/angband/angband-sub026/pkg/utils"
)

// PlayerSaves — спасбросок игрока против ментальной атаки.
func PlayerSaves(l *domain.Level) bool {
	return l.RNG.Int0(100) < l.Player.SkillSav
}

// MonsterResists — спасбросок монстра уровня level против эффекта силы power:
// уровень больше randint1(max(1, power-10)) + 10.
func MonsterResists(rng *utils.RNG, level, power int) bool {
	return level > rng.Int1(max(1, power-10))+10
}

// TakeHit — единая точка потери здоровья игроком.
func TakeHit(l *domain.Level, dam int, killer string) {
	p := l.Player
	if p == nil || p.IsDead {
		return
	}

	if p.Is(domain.TmdInvuln) && dam < 9000 {
		return
	}

	warn := p.Mhp * l.Opts.HitpointWarn / 10
	p.Chp -= dam

	if p.Chp < 0 {
		l.Msg("You die.")
		p.DiedFrom = killer
		p.IsDead = true
		p.Leaving = true
		logger.Log.WithFields(logrus.Fields{
			"component": "player",
			"killer":    killer,
			"depth":     l.Depth,
			"turn":      l.Turn,
		}).Info("player died")
		return
	}

	if p.Chp < warn {
		l.Msg("*** LOW HITPOINT WARNING! ***")
	}
}

// HealPlayer восстанавливает здоровье игрока.
func HealPlayer(l *domain.Level, n int) bool {
	p := l.Player
	if p.Chp >= p.Mhp {
		return false
	}
	p.Chp = min(p.Mhp, p.Chp+n)
	return true
}

type timedMsg struct{ on, off string }

var timedMessages = [domain.TmdMax]timedMsg{
	domain.TmdFast:      {"You feel yourself moving faster!", "You feel yourself slow down."},
	domain.TmdSlow:      {"You feel yourself moving slower!", "You feel yourself speed up."},
	domain.TmdBlind:     {"You are blind!", "You can see again."},
	domain.TmdParalyzed: {"You are paralyzed!", "You can move again."},
	domain.TmdConfused:  {"You are confused!", "You feel less confused now."},
	domain.TmdAfraid:    {"You are terrified!", "You feel bolder now."},
	domain.TmdImage:     {"Oh, wow! Everything looks so cosmic now!", "You can see clearly again."},
	domain.TmdPoisoned:  {"You are poisoned!", "You are no longer poisoned."},
	domain.TmdCut:       {"", "You are no longer bleeding."},
	domain.TmdStun:      {"", "You are no longer stunned."},
	domain.TmdProtEvil:  {"You feel safe from evil!", "You no longer feel safe from evil."},
	domain.TmdInvuln:    {"You feel invulnerable!", "You feel vulnerable once more."},
	domain.TmdHero:      {"You feel like a hero!", "The heroism wears off."},
	domain.TmdShero:     {"You feel like a killing machine!", "You feel less Berserk."},
	domain.TmdShield:    {"A mystic shield forms around your body!", "Your mystic shield crumbles away."},
	domain.TmdBlessed:   {"You feel righteous!", "The prayer has expired."},
	domain.TmdSInvis:    {"Your eyes feel very sensitive!", "Your eyes feel less sensitive."},
	domain.TmdOppAcid:   {"You feel resistant to acid!", "You feel less resistant to acid."},
	domain.TmdOppElec:   {"You feel resistant to electricity!", "You feel less resistant to electricity."},
	domain.TmdOppFire:   {"You feel resistant to fire!", "You feel less resistant to fire."},
	domain.TmdOppCold:   {"You feel resistant to cold!", "You feel less resistant to cold."},
	domain.TmdOppPois:   {"You feel resistant to poison!", "You feel less resistant to poison."},
	domain.TmdOppConf:   {"You feel controlled!", "You feel less controlled."},
}

type gradeStep struct {
	min int
	msg string
}

// Ступени оглушения и ран.
var (
	stunGrades = []gradeStep{
		{101, "You have been knocked out."},
		{51, "You have been heavily stunned."},
		{1, "You have been stunned."},
	}
	cutGrades = []gradeStep{
		{1001, "You have been given a mortal wound."},
		{201, "You have been given a deep gash."},
		{101, "You have been given a severe cut."},
		{51, "You have been given a nasty cut."},
		{26, "You have been given a bad cut."},
		{11, "You have been given a light cut."},
		{1, "You have been given a graze."},
	}
)

func grade(v int, table []gradeStep) (int, string) {
	for i, g := range table {
		if v >= g.min {
			return len(table) - i, g.msg
		}
	}
	return 0, ""
}

// SetTimed устанавливает счетчик эффекта. Возвращает, заметил ли игрок
// перемену (эффект начался, кончился или усилился).
func SetTimed(l *domain.Level, t domain.Timed, v int) bool {
	p := l.Player
	if t == domain.TmdNone || t >= domain.TmdMax {
		return false
	}
	v = max(0, min(v, 10000))
	old := p.Timed[t]
	p.Timed[t] = v

	notice := false
	switch t {
	case domain.TmdStun, domain.TmdCut:
		table := stunGrades
		if t == domain.TmdCut {
			table = cutGrades
		}
		og, _ := grade(old, table)
		ng, msg := grade(v, table)
		switch {
		case ng > og:
			l.Msg(msg)
			notice = true
		case ng == 0 && og > 0:
			l.Msg(timedMessages[t].off)
			notice = true
		}
	default:
		m := timedMessages[t]
		switch {
		case old == 0 && v > 0:
			if m.on != "" {
				l.Msg(m.on)
			}
			notice = true
		case old > 0 && v == 0:
			if m.off != "" {
				l.Msg(m.off)
			}
			notice = true
		}
	}

	if notice && (t == domain.TmdBlind || t == domain.TmdImage) {
		l.Update |= domain.UpdView | domain.UpdMonsters
	}
	return notice
}

// IncTimed прибавляет к счетчику. Для не накапливающихся эффектов
// (паралич) повторное наложение ничего не дает.
func IncTimed(l *domain.Level, t domain.Timed, v int) bool {
	if v <= 0 {
		return false
	}
	if t == domain.TmdParalyzed && l.Player.Is(t) {
		return false
	}
	return SetTimed(l, t, l.Player.Timed[t]+v)
}

// DecTimed уменьшает счетчик, не ниже нуля.
func DecTimed(l *domain.Level, t domain.Timed, v int) bool {
	return SetTimed(l, t, max(0, l.Player.Timed[t]-v))
}

// playerExp — опыт, нужный для перехода на следующий уровень.
var playerExp = []int{
	10, 25, 45, 70, 100, 140, 200, 280, 380, 500,
	650, 850, 1100, 1400, 1800, 2300, 2900, 3600, 4400, 5400,
	6800, 8400, 10200, 12500, 17500, 25000, 35000, 50000, 75000, 100000,
	150000, 200000, 275000, 350000, 450000, 550000, 700000, 850000, 1000000, 1250000,
	1500000, 1800000, 2100000, 2400000, 2700000, 3000000, 3500000, 4000000, 4500000, 5000000,
}

// MaxPlayerLevel — предел уровня персонажа.
var MaxPlayerLevel = len(playerExp)

func checkExperience(l *domain.Level) {
	p := l.Player
	p.Exp = max(0, p.Exp)
	if p.Exp > p.MaxExp {
		p.MaxExp = p.Exp
	}
	for p.Lev > 1 && p.Exp < playerExp[p.Lev-2] {
		p.Lev--
	}
	for p.Lev < MaxPlayerLevel && p.Exp >= playerExp[p.Lev-1] {
		p.Lev++
		l.Msg("Welcome to level %d.", p.Lev)
	}
}

// GainExp начисляет опыт. Вытянутый опыт понемногу восстанавливается.
func GainExp(l *domain.Level, amount int) {
	p := l.Player
	p.Exp += amount
	if p.Exp < p.MaxExp {
		p.MaxExp += amount / 10
	}
	checkExperience(l)
}

// LoseExp отнимает опыт, не ниже нуля.
func LoseExp(l *domain.Level, amount int) {
	p := l.Player
	amount = min(amount, p.Exp)
	p.Exp -= amount
	checkExperience(l)
}

// MonDrainLife — множитель вытягивания опыта от текущего опыта.
const MonDrainLife = 2

// DrainExp — вытягивание опыта. С HoldLife игрок удерживает жизнь с
// шансом keep% и иначе теряет slip; без HoldLife теряет drain.
func DrainExp(l *domain.Level, keep, drain, slip int) {
	p := l.Player
	if p.Has(domain.OFHoldLife) {
		if l.RNG.Int0(100) < keep {
			l.Msg("You keep hold of your life force!")
			return
		}
		l.Msg("You feel your life slipping away!")
		LoseExp(l, slip)
		return
	}
	l.Msg("You feel your life draining away!")
	LoseExp(l, drain)
}

var statDecrease = [domain.StatMax]string{"weak", "stupid", "naive", "clumsy", "sickly", "ugly"}

// DecStat понижает характеристику, если она не поддержана.
func DecStat(l *domain.Level, s domain.Stat, perma bool) bool {
	p := l.Player
	if s >= domain.StatMax {
		return false
	}
	if p.Has(s.SustainFlag()) {
		l.Msg("You feel very %s for a moment, but the feeling passes.", statDecrease[s])
		return true
	}
	if p.StatCur[s] <= 3 {
		return false
	}
	p.StatCur[s]--
	if perma && p.StatMax[s] > 3 {
		p.StatMax[s]--
	}
	l.Msg("You feel very %s.", statDecrease[s])
	return true
}

// DrainMana забирает у игрока до n маны. Возвращает, сколько забрано.
func DrainMana(l *domain.Level, n int) int {
	p := l.Player
	n = min(n, p.Csp)
	p.Csp -= n
	return n
}
