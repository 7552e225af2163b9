package project

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/logger"
)

// Resist — уровень защиты игрока от стихии.
const (
	ResistVulnerable = -1
	ResistNone       = 0
	ResistImmune     = 3
)

// hurtChance — шанс 1/hurtChance потерять характеристику от стихии.
const hurtChance = 16

// CheckForResist — уровень защиты: уязвимость -1, каждое сопротивление
// (постоянное или временное) +1, иммунитет 3.
func CheckForResist(p *domain.Player, typ domain.Element) int {
	info := typ.Info()
	if info == nil {
		return ResistNone
	}
	flags := p.Flags()
	res := 0
	if info.Vuln != domain.OFNone && flags.Has(info.Vuln) {
		res--
	}
	if p.Is(info.Opp) {
		res++
	}
	if info.Resist != domain.OFNone && flags.Has(info.Resist) {
		res++
	}
	if info.Immunity != domain.OFNone && flags.Has(info.Immunity) {
		res = ResistImmune
	}
	return res
}

// sideImmune — защита снимает и побочные эффекты стихии.
func sideImmune(p *domain.Player, typ domain.Element) bool {
	info := typ.Info()
	if info.Immunity != domain.OFNone {
		return info.SideImmune && p.Has(info.Immunity)
	}
	return p.Has(info.Resist) || p.Is(info.Opp)
}

// AdjustDam пересчитывает урон с учетом защиты resist.
// Кислоту наполовину принимает доспех, святая сфера всегда вдвое слабее.
func AdjustDam(l *domain.Level, typ domain.Element, dam, resist int) int {
	if resist == ResistImmune {
		return 0
	}
	if (typ == domain.GFAcid && minusAC(l)) || typ == domain.GFHolyOrb {
		dam = (dam + 1) / 2
	}
	if resist == ResistVulnerable {
		return dam * 4 / 3
	}
	info := typ.Info()
	denom := info.Denom.Roll(l.RNG)
	for i := resist; i > 0; i-- {
		if denom != 0 {
			dam = dam * info.Num / denom
		}
	}
	return dam
}

// playerCtx — состояние обработчика побочных эффектов для игрока.
type playerCtx struct {
	l   *domain.Level
	who domain.Source
	r   int
	// raw — урон после ослабления расстоянием, dam — после защит.
	raw     int
	dam     int
	typ     domain.Element
	obvious bool
}

type playerHandler func(*playerCtx)

var playerHandlers = map[domain.Element]playerHandler{
	domain.GFAcid:    func(pc *playerCtx) { pc.elemental(domain.OFResAcid, domain.TmdOppAcid, domain.StatChr) },
	domain.GFElec:    func(pc *playerCtx) { pc.elemental(domain.OFResElec, domain.TmdOppElec, domain.StatDex) },
	domain.GFFire:    func(pc *playerCtx) { pc.elemental(domain.OFResFire, domain.TmdOppFire, domain.StatStr) },
	domain.GFCold:    func(pc *playerCtx) { pc.elemental(domain.OFResCold, domain.TmdOppCold, domain.StatStr) },
	domain.GFPois:    plPois,
	domain.GFPlasma:  plPlasma,
	domain.GFNether:  plNether,
	domain.GFWater:   plWater,
	domain.GFChaos:   plChaos,
	domain.GFShard:   plShard,
	domain.GFSound:   plSound,
	domain.GFConfu:   plConfu,
	domain.GFDisen:   plDisen,
	domain.GFNexus:   plNexus,
	domain.GFForce:   plForce,
	domain.GFInertia: plInertia,
	domain.GFLight:   func(pc *playerCtx) { pc.dazzle(domain.OFResLight) },
	domain.GFDark:    func(pc *playerCtx) { pc.dazzle(domain.OFResDark) },
	domain.GFTime:    plTime,
	domain.GFGravity: plGravity,
	domain.GFIce:     plIce,
}

func (pc *playerCtx) has(f domain.ObjFlag) bool { return pc.l.Player.Has(f) }

// elemental — порча вещей и, без всякой защиты, характеристики.
func (pc *playerCtx) elemental(res domain.ObjFlag, opp domain.Timed, stat domain.Stat) {
	p := pc.l.Player
	r, o := pc.has(res), p.Is(opp)
	if !(r || o) && pc.l.RNG.OneIn(hurtChance) {
		systems.DecStat(pc.l, stat, false)
	}
	if !(r && o) {
		InvenDamage(pc.l, pc.typ, min(pc.raw*5, 300))
	}
}

func plPois(pc *playerCtx) {
	if pc.has(domain.OFResPois) || pc.l.Player.Is(domain.TmdOppPois) {
		return
	}
	systems.IncTimed(pc.l, domain.TmdPoisoned, pc.l.RNG.Int0(pc.dam)+10)
}

func plPlasma(pc *playerCtx) {
	if pc.has(domain.OFResSound) {
		return
	}
	k := 35
	if pc.dam <= 40 {
		k = pc.dam*3/4 + 5
	}
	systems.IncTimed(pc.l, domain.TmdStun, pc.l.RNG.Int1(k))
}

// Незер тянет опыт. Мощный источник (дыхание или сильный маг) берет
// больше, а еще гасит ману и сбивает энергию.
func plNether(pc *playerCtx) {
	l := pc.l
	p := l.Player
	if pc.has(domain.OFResNethr) {
		return
	}
	drain := 200 + p.Exp/100*systems.MonDrainLife
	slip := 200 + p.Exp/1000*systems.MonDrainLife
	if !pc.who.Strong() {
		systems.DrainExp(l, 75, drain, slip)
		return
	}

	systems.DrainExp(l, 75, 2*drain, 2*slip)
	if p.Msp > 0 && l.RNG.Int0(pc.raw) > 100 {
		l.Msg("Your mind is dulled.")
		p.Csp -= min(p.Csp, pc.raw/10)
	}
	if l.RNG.Int0(pc.raw) > 200 {
		l.Msg("Your energy is sapped!")
		p.Energy = 0
	}
}

func plWater(pc *playerCtx) {
	l := pc.l
	if !pc.has(domain.OFResSound) {
		systems.IncTimed(l, domain.TmdStun, l.RNG.Int1(40))
	}
	if !pc.has(domain.OFResConfu) {
		systems.IncTimed(l, domain.TmdConfused, l.RNG.Int1(5)+5)
	}
}

func plChaos(pc *playerCtx) {
	l := pc.l
	if !pc.has(domain.OFResConfu) {
		systems.IncTimed(l, domain.TmdConfused, l.RNG.Int0(20)+10)
	}
	if !pc.has(domain.OFResChaos) {
		systems.IncTimed(l, domain.TmdImage, l.RNG.Int1(10))
	}
	if !pc.has(domain.OFResNethr) && !pc.has(domain.OFResChaos) {
		exp := l.Player.Exp
		systems.DrainExp(l, 75, 5000+exp/100*systems.MonDrainLife, 500+exp/1000*systems.MonDrainLife)
	}
}

func plShard(pc *playerCtx) {
	if !pc.has(domain.OFResShard) {
		systems.IncTimed(pc.l, domain.TmdCut, pc.dam)
	}
}

func plSound(pc *playerCtx) {
	if pc.has(domain.OFResSound) {
		return
	}
	k := 35
	if pc.dam <= 90 {
		k = pc.dam/3 + 5
	}
	systems.IncTimed(pc.l, domain.TmdStun, pc.l.RNG.Int1(k))
}

func plConfu(pc *playerCtx) {
	if !pc.has(domain.OFResConfu) {
		systems.IncTimed(pc.l, domain.TmdConfused, pc.l.RNG.Int1(20)+10)
	}
}

func plDisen(pc *playerCtx) {
	if !pc.has(domain.OFResDisen) {
		ApplyDisenchant(pc.l)
	}
}

// Нексус швыряет игрока по уровню или между уровнями.
func plNexus(pc *playerCtx) {
	l := pc.l
	if pc.has(domain.OFResNexus) {
		return
	}
	switch l.RNG.Int1(7) {
	case 1, 2, 3:
		systems.TeleportPlayer(l, 200)
	case 4, 5:
		if m := l.Monster(pc.who.Mon); pc.who.IsMonster() && m != nil {
			systems.TeleportPlayerTo(l, m.Pos)
		} else {
			systems.TeleportPlayer(l, 200)
		}
	case 6:
		if systems.PlayerSaves(l) {
			l.Msg("You resist the effects!")
			return
		}
		systems.TeleportPlayerLevel(l)
	case 7:
		if systems.PlayerSaves(l) {
			l.Msg("You resist the effects!")
			return
		}
		l.Msg("Your body starts to scramble...")
		scrambleStats(l)
	}
}

// scrambleStats меняет местами две характеристики.
func scrambleStats(l *domain.Level) {
	p := l.Player
	a := domain.Stat(l.RNG.Int0(int(domain.StatMax)))
	b := domain.Stat(l.RNG.Int0(int(domain.StatMax)))
	p.StatCur[a], p.StatCur[b] = p.StatCur[b], p.StatCur[a]
	p.StatMax[a], p.StatMax[b] = p.StatMax[b], p.StatMax[a]
}

func plForce(pc *playerCtx) {
	if !pc.has(domain.OFResSound) {
		systems.IncTimed(pc.l, domain.TmdStun, pc.l.RNG.Int1(20))
	}
}

func plInertia(pc *playerCtx) {
	systems.IncTimed(pc.l, domain.TmdSlow, pc.l.RNG.Int0(4)+4)
}

// dazzle — свет или тьма ослепляют незащищенного игрока.
func (pc *playerCtx) dazzle(res domain.ObjFlag) {
	p := pc.l.Player
	if p.Blind() || pc.has(res) || pc.has(domain.OFResBlind) {
		return
	}
	systems.IncTimed(pc.l, domain.TmdBlind, pc.l.RNG.Int1(5)+2)
}

var statFormer = [domain.StatMax]string{"strong", "bright", "wise", "agile", "hale", "beautiful"}

// Время отнимает опыт или характеристики.
func plTime(pc *playerCtx) {
	l := pc.l
	p := l.Player
	switch k := l.RNG.Int1(10); {
	case k <= 5:
		l.Msg("You feel as if life has clocked back.")
		systems.LoseExp(l, 100+p.Exp/100*systems.MonDrainLife)
	case k <= 9:
		s := domain.Stat(l.RNG.Int0(int(domain.StatMax)))
		l.Msg("You're not as %s as you used to be...", statFormer[s])
		p.StatCur[s] = max(3, p.StatCur[s]*3/4)
	default:
		l.Msg("You're not as powerful as you used to be...")
		for s := domain.StatStr; s < domain.StatMax; s++ {
			p.StatCur[s] = max(3, p.StatCur[s]*3/4)
		}
	}
}

func plGravity(pc *playerCtx) {
	l := pc.l
	l.Msg("Gravity warps around you.")
	systems.TeleportPlayer(l, 5)
	systems.IncTimed(l, domain.TmdSlow, l.RNG.Int0(4)+4)
	if !pc.has(domain.OFResSound) {
		k := 35
		if pc.dam <= 90 {
			k = pc.dam/3 + 5
		}
		systems.IncTimed(l, domain.TmdStun, l.RNG.Int1(k))
	}
}

func plIce(pc *playerCtx) {
	l := pc.l
	if !pc.has(domain.OFResShard) {
		systems.IncTimed(l, domain.TmdCut, l.RNG.Damroll(5, 8))
	}
	if !pc.has(domain.OFResSound) {
		systems.IncTimed(l, domain.TmdStun, l.RNG.Int1(15))
	}
	pc.elemental(domain.OFResCold, domain.TmdOppCold, domain.StatStr)
}

// killerName — чем погиб игрок: «a kobold» с настоящим именем расы.
func killerName(l *domain.Level, who domain.Source) string {
	if !who.IsMonster() {
		return "a trap"
	}
	m := l.Monster(who.Mon)
	if m == nil {
		return "something"
	}
	r := l.RaceOf(m)
	if r.Unique() {
		return r.Name
	}
	if r.Name != "" && (r.Name[0] == 'a' || r.Name[0] == 'e' || r.Name[0] == 'i' || r.Name[0] == 'o' || r.Name[0] == 'u') {
		return "an " + r.Name
	}
	return "a " + r.Name
}

// projectP применяет проекцию к игроку в клетке p.
func projectP(l *domain.Level, who domain.Source, r int, at gruid.Point, dam int, typ domain.Element) bool {
	p := l.Player
	if p == nil || p.IsDead || !l.Cave.At(at).IsPlayer() {
		return false
	}
	// Игрок не задевает сам себя.
	if who.IsPlayer() {
		return false
	}
	info := typ.Info()
	if info == nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "project",
			"element":   int(typ),
		}).Warn("unknown damage type")
		return false
	}

	seen := false
	if m := l.Monster(who.Mon); who.IsMonster() && m != nil {
		seen = !p.Blind() && m.Visible
	}
	raw := (dam + r) / (r + 1)
	if !seen && info.Desc != "" {
		l.Msg("You are hit by %s!", info.Desc)
	}

	resist := CheckForResist(p, typ)
	final := AdjustDam(l, typ, raw, resist)
	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "project",
			"element":   typ,
			"raw":       raw,
			"dam":       final,
			"resist":    resist,
		}).Debug("player hit")
	}
	if final > 0 {
		systems.TakeHit(l, final, killerName(l, who))
	}

	if h, ok := playerHandlers[typ]; ok && !p.IsDead && !sideImmune(p, typ) {
		pc := playerCtx{l: l, who: who, r: r, raw: raw, dam: final, typ: typ, obvious: true}
		h(&pc)
	}
	return true
}
