package ai

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/internal/systems/project"
	"github.com/angband/angband-sub026/pkg/logger"
)

// intOutOf — бросок процентов; не умные монстры соображают вдвое хуже.
func intOutOf(l *domain.Level, r *domain.Race, prob int) bool {
	if !r.Flags.Has(domain.RFSmart) {
		prob /= 2
	}
	return l.RNG.Int0(100) < prob
}

// cheatSmart — что монстр «знает» о защитах игрока без наблюдения.
func cheatSmart(p *domain.Player) domain.FlagSet[domain.SmartFlag] {
	var s domain.FlagSet[domain.SmartFlag]
	f := p.Flags()
	set := func(sf domain.SmartFlag, on bool) {
		if on {
			s.Set(sf)
		}
	}

	set(domain.SMImmFree, f.Has(domain.OFFreeAct))
	set(domain.SMImmMana, p.Msp == 0)

	set(domain.SMImmAcid, f.Has(domain.OFImAcid))
	set(domain.SMImmElec, f.Has(domain.OFImElec))
	set(domain.SMImmFire, f.Has(domain.OFImFire))
	set(domain.SMImmCold, f.Has(domain.OFImCold))

	set(domain.SMOppAcid, p.Is(domain.TmdOppAcid))
	set(domain.SMOppElec, p.Is(domain.TmdOppElec))
	set(domain.SMOppFire, p.Is(domain.TmdOppFire))
	set(domain.SMOppCold, p.Is(domain.TmdOppCold))
	set(domain.SMOppPois, p.Is(domain.TmdOppPois))

	res := [...]struct {
		sm domain.SmartFlag
		of domain.ObjFlag
	}{
		{domain.SMResAcid, domain.OFResAcid}, {domain.SMResElec, domain.OFResElec},
		{domain.SMResFire, domain.OFResFire}, {domain.SMResCold, domain.OFResCold},
		{domain.SMResPois, domain.OFResPois}, {domain.SMResFear, domain.OFResFear},
		{domain.SMResLite, domain.OFResLight}, {domain.SMResDark, domain.OFResDark},
		{domain.SMResBlind, domain.OFResBlind}, {domain.SMResConfu, domain.OFResConfu},
		{domain.SMResSound, domain.OFResSound}, {domain.SMResShard, domain.OFResShard},
		{domain.SMResNexus, domain.OFResNexus}, {domain.SMResNethr, domain.OFResNethr},
		{domain.SMResChaos, domain.OFResChaos}, {domain.SMResDisen, domain.OFResDisen},
	}
	for _, e := range res {
		set(e.sm, f.Has(e.of))
	}
	return s
}

// elemRule — заклинания одной стихии и флаги, которые делают их бесполезными.
type elemRule struct {
	imm, opp, res domain.SmartFlag
	drop          []domain.Spell
}

var elemRules = [...]elemRule{
	{domain.SMImmAcid, domain.SMOppAcid, domain.SMResAcid,
		[]domain.Spell{domain.SpellBrAcid, domain.SpellBaAcid, domain.SpellBoAcid}},
	{domain.SMImmElec, domain.SMOppElec, domain.SMResElec,
		[]domain.Spell{domain.SpellBrElec, domain.SpellBaElec, domain.SpellBoElec}},
	{domain.SMImmFire, domain.SMOppFire, domain.SMResFire,
		[]domain.Spell{domain.SpellBrFire, domain.SpellBaFire, domain.SpellBoFire}},
	{domain.SMImmCold, domain.SMOppCold, domain.SMResCold,
		[]domain.Spell{domain.SpellBrCold, domain.SpellBaCold, domain.SpellBoCold, domain.SpellBoIcee}},
	// У яда нет иммунитета.
	{domain.SMNone, domain.SMOppPois, domain.SMResPois,
		[]domain.Spell{domain.SpellBrPois, domain.SpellBaPois}},
}

// resRule — одиночные защиты: флаг, шанс отказа, заклинания.
type resRule struct {
	flag   domain.SmartFlag
	chance int
	drop   []domain.Spell
}

var resRules = [...]resRule{
	{domain.SMResFear, 100, []domain.Spell{domain.SpellScare}},
	{domain.SMResLite, 50, []domain.Spell{domain.SpellBrLite}},
	{domain.SMResDark, 50, []domain.Spell{domain.SpellBrDark, domain.SpellBaDark}},
	{domain.SMResBlind, 100, []domain.Spell{domain.SpellBlind}},
	{domain.SMResConfu, 100, []domain.Spell{domain.SpellConf}},
	{domain.SMResConfu, 50, []domain.Spell{domain.SpellBrConf}},
	{domain.SMResSound, 50, []domain.Spell{domain.SpellBrSoun}},
	{domain.SMResShard, 50, []domain.Spell{domain.SpellBrShar}},
	{domain.SMResNexus, 50, []domain.Spell{domain.SpellBrNexu, domain.SpellTeleLevel}},
	{domain.SMResNethr, 50, []domain.Spell{domain.SpellBrNeth, domain.SpellBaNeth, domain.SpellBoNeth}},
	{domain.SMResChaos, 50, []domain.Spell{domain.SpellBrChao}},
	{domain.SMResDisen, 100, []domain.Spell{domain.SpellBrDise}},
	{domain.SMImmFree, 100, []domain.Spell{domain.SpellHold, domain.SpellSlow}},
	{domain.SMImmMana, 100, []domain.Spell{domain.SpellDrainMana}},
}

// RemoveBadSpells убирает заклинания, против которых у игрока есть защита.
// Каждое заклинание отбрасывается отдельным броском.
func RemoveBadSpells(l *domain.Level, h types.Handle, f spellSet) spellSet {
	m := l.Monster(h)
	if m == nil {
		return f
	}
	r := l.RaceOf(m)
	if r.Flags.Has(domain.RFStupid) {
		return f
	}
	if !l.Opts.SmartCheat && !l.Opts.SmartLearn {
		return f
	}

	var smart domain.FlagSet[domain.SmartFlag]
	if l.Opts.SmartLearn {
		// Изредка монстр забывает выученное.
		if !m.Smart.Empty() && l.RNG.Int0(100) < 1 {
			m.Forget()
		}
		smart = m.Smart
	}
	if l.Opts.SmartCheat {
		smart = smart.Union(cheatSmart(l.Player))
	}
	if smart.Empty() {
		return f
	}

	drop := func(chance int, ss []domain.Spell) {
		for _, s := range ss {
			if intOutOf(l, r, chance) {
				f.Clear(s)
			}
		}
	}

	for _, e := range elemRules {
		opp, res := smart.Has(e.opp), smart.Has(e.res)
		switch {
		case e.imm != domain.SMNone && smart.Has(e.imm):
			drop(100, e.drop)
		case opp && res:
			drop(80, e.drop)
		case opp || res:
			drop(30, e.drop)
		}
	}
	for _, e := range resRules {
		if smart.Has(e.flag) {
			drop(e.chance, e.drop)
		}
	}
	return f
}

// pickSpell — случайное заклинание из набора.
func pickSpell(l *domain.Level, f spellSet) domain.Spell {
	list := f.List()
	if len(list) == 0 {
		return domain.SpellNone
	}
	return list[l.RNG.Int0(len(list))]
}

// ChooseSpell выбирает заклинание. Умный монстр сначала выбирает тактику:
// бегство, лечение, прыжок в сторону, призыв, атаку или помеху.
func ChooseSpell(l *domain.Level, h types.Handle, f spellSet) domain.Spell {
	m := l.Monster(h)
	r := l.RaceOf(m)

	if l.Opts.SmartMonsters && !r.Flags.Has(domain.RFStupid) {
		has := func(mask spellSet) bool { return !f.Intersect(mask).Empty() }
		hasEscape, hasAttack := has(maskEscape), has(maskAttack)
		hasSummon, hasTactic := has(maskSummon), has(maskTactic)
		hasAnnoy, hasHaste, hasHeal := has(maskAnnoy), has(maskHaste), has(maskHeal)

		var mask spellSet
		switch {
		case hasEscape && (m.HP < m.MaxHP/4 || m.Afraid > 0):
			mask = maskEscape
		case hasHeal && m.HP < m.MaxHP/4:
			mask = maskHeal
		case hasTactic && m.Cdis < 4 && hasAttack && l.RNG.Int0(100) < 75:
			mask = maskTactic
		case hasHeal && m.HP < m.MaxHP*3/4 && l.RNG.Int0(100) < 60:
			mask = maskHeal
		case hasSummon && l.RNG.Int0(100) < 50:
			mask = maskSummon
		case hasAttack && l.RNG.Int0(100) < 85:
			mask = maskAttack
		case hasTactic && l.RNG.Int0(100) < 50:
			mask = maskTactic
		case hasHaste && l.RNG.Int0(100) < 20+r.Speed-m.Speed:
			mask = maskHaste
		case hasAnnoy && l.RNG.Int0(100) < 85:
			mask = maskAnnoy
		}
		f = f.Intersect(mask)
		if f.Empty() {
			return domain.SpellNone
		}
	}
	return pickSpell(l, f)
}

// deathName — «a kobold» для строки «убит кем».
func deathName(r *domain.Race) string {
	if r.Unique() || r.Name == "" {
		return r.Name
	}
	if strings.ContainsRune("AEIOUaeiou", rune(r.Name[0])) {
		return "an " + r.Name
	}
	return "a " + r.Name
}

// MakeAttackSpell — попытка монстра колдовать, стрелять или дышать.
// Возвращает true, если ход потрачен (в том числе на неудачное заклинание).
func MakeAttackSpell(l *domain.Level, h types.Handle) bool {
	m := l.Monster(h)
	if m == nil {
		return false
	}
	r := l.RaceOf(m)
	p := l.Player

	if m.Confused > 0 || m.MFlags.Has(domain.MFNice) {
		return false
	}

	chance := (r.FreqInnate + r.FreqSpell) / 2
	if chance == 0 {
		return false
	}

	noInnate := false
	if !l.Opts.SmartMonsters {
		if l.RNG.Int0(100) >= chance {
			return false
		}
	} else {
		// Умные колдуют чаще, потому что могут ошибиться.
		if l.RNG.Int0(100) >= 2*chance {
			return false
		}
		if l.RNG.Int0(100) >= chance {
			noInnate = true
		}
	}

	if m.Cdis > domain.MaxRange || !systems.Projectable(l.Cave, m.Pos, p.Pos) {
		return false
	}

	rlev := max(1, r.Level)
	f := r.Spells
	f.Clear(domain.SpellInnateEnd)

	if noInnate {
		f = f.Minus(maskInnate)
	}

	if r.Flags.Has(domain.RFSmart) && m.HP < m.MaxHP/10 && l.RNG.Int0(100) < 50 {
		f = f.Intersect(maskInt)
		if f.Empty() {
			return false
		}
	}

	f = RemoveBadSpells(l, h, f)
	if f.Empty() {
		return false
	}

	if l.Opts.SmartMonsters && !r.Flags.Has(domain.RFStupid) {
		if !f.Intersect(maskBolt).Empty() && !systems.CleanShot(l.Cave, m.Pos, p.Pos) {
			f = f.Minus(maskBolt)
		}
		if !systems.SummonPossible(l, p.Pos) {
			f = f.Minus(maskSummon)
		}
		if f.Empty() {
			return false
		}
	}

	if p.Leaving {
		return false
	}

	cc := &castCtx{
		l:      l,
		h:      h,
		m:      m,
		r:      r,
		rlev:   rlev,
		name:   l.MonName(m),
		poss:   r.Possessive(),
		blind:  p.Blind(),
		killer: deathName(r),
	}
	cc.seen = !cc.blind && m.Visible

	s := ChooseSpell(l, h, f)
	if s == domain.SpellNone {
		return false
	}

	failrate := 25 - (rlev+3)/4
	if !l.Opts.SmartMonsters || r.Flags.Has(domain.RFStupid) {
		failrate = 0
	}
	if !s.Innate() && l.RNG.Int0(100) < failrate {
		l.Msg("%s tries to cast a spell, but fails.", cc.name)
		return true
	}

	cc.cast(s)

	lore := l.LoreOf(m)
	if cc.seen {
		lore.LearnSpell(s)
	}
	if p.IsDead {
		lore.Deaths++
	}
	return true
}

// castCtx — все, что нужно для разрешения одного заклинания.
type castCtx struct {
	l      *domain.Level
	h      types.Handle
	m      *domain.Monster
	r      *domain.Race
	rlev   int
	name   string
	poss   string
	killer string
	blind  bool
	seen   bool
}

// say выводит одно из двух сообщений в зависимости от слепоты игрока.
// В строках %s — имя монстра.
func (cc *castCtx) say(blindMsg, msg string) {
	if cc.blind {
		cc.l.Msg(blindMsg, cc.name)
	} else {
		cc.l.Msg(msg, cc.name)
	}
}

// source — заклинатель как источник проекции: дыхание бьет в полную силу,
// остальное — на уровне монстра.
func (cc *castCtx) source(s domain.Spell) domain.Source {
	power := cc.rlev
	if s.Breath() {
		power = domain.BreathPower
	}
	return domain.FromMonster(cc.h).WithPower(power)
}

func (cc *castCtx) bolt(who domain.Source, typ domain.Element, dam int) {
	flg := domain.FlagsOf(domain.PFStop, domain.PFKill)
	project.Project(cc.l, who, 0, cc.l.Player.Pos, dam, typ, flg)
}

func (cc *castCtx) breath(who domain.Source, typ domain.Element, dam int) {
	rad := 2
	if cc.r.Flags.Has(domain.RFPowerful) {
		rad = 3
	}
	flg := domain.FlagsOf(domain.PFGrid, domain.PFItem, domain.PFKill)
	project.Project(cc.l, who, rad, cc.l.Player.Pos, dam, typ, flg)
}

func (cc *castCtx) learn(what domain.Drs) { systems.UpdateSmartLearn(cc.l, cc.h, what) }

// saves — спасбросок игрока с сообщением об успехе.
func (cc *castCtx) saves(msg string) bool {
	if systems.PlayerSaves(cc.l) {
		cc.l.Msg(msg)
		return true
	}
	return false
}

func (cc *castCtx) hurt(dam int) { systems.TakeHit(cc.l, dam, cc.killer) }

// dmgFunc — урон заклинания.
type dmgFunc func(cc *castCtx) int

// breathDam — доля текущего здоровья монстра, не больше cap.
func breathDam(div, cap int) dmgFunc {
	return func(cc *castCtx) int { return min(cc.m.HP/div, cap) }
}

func dice(n, s int) dmgFunc {
	return func(cc *castCtx) int { return cc.l.RNG.Damroll(n, s) }
}

// noLearn — заклинание ничего не сообщает монстру о защитах игрока.
const noLearn = domain.Drs(255)

// missile — стрела, дыхание, шар или болт.
type missile struct {
	typ      domain.Element
	ball     bool
	blindMsg string
	msg      string
	dam      dmgFunc
	learn    domain.Drs
	// extra — строка после объявления (водоворот).
	extra string
}

const (
	breathes = "%s breathes."
	mumbles  = "%s mumbles."
	noise    = "%s makes a strange noise."
	storm    = "%s mumbles powerfully."
)

var missiles = map[domain.Spell]missile{
	domain.SpellArrow1: {domain.GFArrow, false, noise, "%s fires an arrow.", dice(1, 6), noLearn, ""},
	domain.SpellArrow2: {domain.GFArrow, false, noise, "%s fires an arrow!", dice(3, 6), noLearn, ""},
	domain.SpellArrow3: {domain.GFArrow, false, noise, "%s fires a missile.", dice(5, 6), noLearn, ""},
	domain.SpellArrow4: {domain.GFArrow, false, noise, "%s fires a missile!", dice(7, 6), noLearn, ""},

	domain.SpellBrAcid: {domain.GFAcid, true, breathes, "%s breathes acid.", breathDam(3, 1600), domain.DrsAcid, ""},
	domain.SpellBrElec: {domain.GFElec, true, breathes, "%s breathes lightning.", breathDam(3, 1600), domain.DrsElec, ""},
	domain.SpellBrFire: {domain.GFFire, true, breathes, "%s breathes fire.", breathDam(3, 1600), domain.DrsFire, ""},
	domain.SpellBrCold: {domain.GFCold, true, breathes, "%s breathes frost.", breathDam(3, 1600), domain.DrsCold, ""},
	domain.SpellBrPois: {domain.GFPois, true, breathes, "%s breathes gas.", breathDam(3, 800), domain.DrsPois, ""},
	domain.SpellBrNeth: {domain.GFNether, true, breathes, "%s breathes nether.", breathDam(6, 550), domain.DrsNeth, ""},
	domain.SpellBrLite: {domain.GFLight, true, breathes, "%s breathes light.", breathDam(6, 400), domain.DrsLite, ""},
	domain.SpellBrDark: {domain.GFDark, true, breathes, "%s breathes darkness.", breathDam(6, 400), domain.DrsDark, ""},
	domain.SpellBrConf: {domain.GFConfu, true, breathes, "%s breathes confusion.", breathDam(6, 400), domain.DrsConf, ""},
	domain.SpellBrSoun: {domain.GFSound, true, breathes, "%s breathes sound.", breathDam(6, 500), domain.DrsSound, ""},
	domain.SpellBrChao: {domain.GFChaos, true, breathes, "%s breathes chaos.", breathDam(6, 500), domain.DrsChaos, ""},
	domain.SpellBrDise: {domain.GFDisen, true, breathes, "%s breathes disenchantment.", breathDam(6, 500), domain.DrsDisen, ""},
	domain.SpellBrNexu: {domain.GFNexus, true, breathes, "%s breathes nexus.", breathDam(6, 400), domain.DrsNexus, ""},
	domain.SpellBrTime: {domain.GFTime, true, breathes, "%s breathes time.", breathDam(3, 150), noLearn, ""},
	domain.SpellBrIner: {domain.GFInertia, true, breathes, "%s breathes inertia.", breathDam(6, 200), noLearn, ""},
	domain.SpellBrGrav: {domain.GFGravity, true, breathes, "%s breathes gravity.", breathDam(3, 200), noLearn, ""},
	domain.SpellBrShar: {domain.GFShard, true, breathes, "%s breathes shards.", breathDam(6, 500), domain.DrsShard, ""},
	domain.SpellBrPlas: {domain.GFPlasma, true, breathes, "%s breathes plasma.", breathDam(6, 150), noLearn, ""},
	domain.SpellBrWall: {domain.GFForce, true, breathes, "%s breathes force.", breathDam(6, 200), noLearn, ""},

	domain.SpellBoulder: {domain.GFArrow, false, "You hear something grunt with exertion.", "%s hurls a boulder at you!",
		func(cc *castCtx) int { return cc.l.RNG.Damroll(1+cc.r.Level/7, 12) }, noLearn, ""},

	domain.SpellBaAcid: {domain.GFAcid, true, mumbles, "%s casts an acid ball.",
		func(cc *castCtx) int { return cc.l.RNG.Int1(cc.rlev*3) + 15 }, domain.DrsAcid, ""},
	domain.SpellBaElec: {domain.GFElec, true, mumbles, "%s casts a lightning ball.",
		func(cc *castCtx) int { return cc.l.RNG.Int1(cc.rlev*3/2) + 8 }, domain.DrsElec, ""},
	domain.SpellBaFire: {domain.GFFire, true, mumbles, "%s casts a fire ball.",
		func(cc *castCtx) int { return cc.l.RNG.Int1(cc.rlev*7/2) + 10 }, domain.DrsFire, ""},
	domain.SpellBaCold: {domain.GFCold, true, mumbles, "%s casts a frost ball.",
		func(cc *castCtx) int { return cc.l.RNG.Int1(cc.rlev*3/2) + 10 }, domain.DrsCold, ""},
	domain.SpellBaPois: {domain.GFPois, true, mumbles, "%s casts a stinking cloud.", dice(12, 2), domain.DrsPois, ""},
	domain.SpellBaNeth: {domain.GFNether, true, mumbles, "%s casts a nether ball.",
		func(cc *castCtx) int { return 50 + cc.l.RNG.Damroll(10, 10) + cc.rlev }, domain.DrsNeth, ""},
	domain.SpellBaWate: {domain.GFWater, true, mumbles, "%s gestures fluidly.",
		func(cc *castCtx) int { return cc.l.RNG.Int1(cc.rlev*5/2) + 50 }, noLearn, "You are engulfed in a whirlpool."},
	domain.SpellBaMana: {domain.GFMana, true, storm, "%s invokes a mana storm.",
		func(cc *castCtx) int { return cc.rlev*5 + cc.l.RNG.Damroll(10, 10) }, noLearn, ""},
	domain.SpellBaDark: {domain.GFDark, true, storm, "%s invokes a darkness storm.",
		func(cc *castCtx) int { return cc.rlev*5 + cc.l.RNG.Damroll(10, 10) }, domain.DrsDark, ""},

	domain.SpellBoAcid: {domain.GFAcid, false, mumbles, "%s casts a acid bolt.",
		func(cc *castCtx) int { return cc.l.RNG.Damroll(7, 8) + cc.rlev/3 }, domain.DrsAcid, ""},
	domain.SpellBoElec: {domain.GFElec, false, mumbles, "%s casts a lightning bolt.",
		func(cc *castCtx) int { return cc.l.RNG.Damroll(4, 8) + cc.rlev/3 }, domain.DrsElec, ""},
	domain.SpellBoFire: {domain.GFFire, false, mumbles, "%s casts a fire bolt.",
		func(cc *castCtx) int { return cc.l.RNG.Damroll(9, 8) + cc.rlev/3 }, domain.DrsFire, ""},
	domain.SpellBoCold: {domain.GFCold, false, mumbles, "%s casts a frost bolt.",
		func(cc *castCtx) int { return cc.l.RNG.Damroll(6, 8) + cc.rlev/3 }, domain.DrsCold, ""},
	domain.SpellBoNeth: {domain.GFNether, false, mumbles, "%s casts a nether bolt.",
		func(cc *castCtx) int { return 30 + cc.l.RNG.Damroll(5, 5) + cc.rlev*3/2 }, domain.DrsNeth, ""},
	domain.SpellBoWate: {domain.GFWater, false, mumbles, "%s casts a water bolt.",
		func(cc *castCtx) int { return cc.l.RNG.Damroll(10, 10) + cc.rlev }, noLearn, ""},
	domain.SpellBoMana: {domain.GFMana, false, mumbles, "%s casts a mana bolt.",
		func(cc *castCtx) int { return cc.l.RNG.Int1(cc.rlev*7/2) + 50 }, noLearn, ""},
	domain.SpellBoPlas: {domain.GFPlasma, false, mumbles, "%s casts a plasma bolt.",
		func(cc *castCtx) int { return 10 + cc.l.RNG.Damroll(8, 7) + cc.rlev }, noLearn, ""},
	domain.SpellBoIcee: {domain.GFIce, false, mumbles, "%s casts an ice bolt.",
		func(cc *castCtx) int { return cc.l.RNG.Damroll(6, 6) + cc.rlev }, domain.DrsCold, ""},
	domain.SpellMissile: {domain.GFMissile, false, mumbles, "%s casts a magic missile.",
		func(cc *castCtx) int { return cc.l.RNG.Damroll(2, 6) + cc.rlev/3 }, noLearn, ""},
}

// summon — заклинание призыва: сколько раз и кого.
type summon struct {
	msg   string
	waves []summonWave
	heard string
}

type summonWave struct {
	kind systems.SummonKind
	n    int
}

const (
	heardOne  = "You hear something appear nearby."
	heardMany = "You hear many things appear nearby."
)

var summons = map[domain.Spell]summon{
	domain.SpellSMonster:  {"%s magically summons help!", []summonWave{{systems.SummonAny, 1}}, heardOne},
	domain.SpellSMonsters: {"%s magically summons monsters!", []summonWave{{systems.SummonAny, 8}}, heardMany},
	domain.SpellSAnimal:   {"%s magically summons animals.", []summonWave{{systems.SummonAnimal, 6}}, heardMany},
	domain.SpellSSpider:   {"%s magically summons spiders.", []summonWave{{systems.SummonSpider, 6}}, heardMany},
	domain.SpellSHound:    {"%s magically summons hounds.", []summonWave{{systems.SummonHound, 6}}, heardMany},
	domain.SpellSHydra:    {"%s magically summons hydras.", []summonWave{{systems.SummonHydra, 6}}, heardMany},
	domain.SpellSAngel:    {"%s magically summons an angel!", []summonWave{{systems.SummonAngel, 1}}, heardOne},
	domain.SpellSDemon:    {"%s magically summons a hellish adversary!", []summonWave{{systems.SummonDemon, 1}}, heardOne},
	domain.SpellSUndead:   {"%s magically summons an undead adversary!", []summonWave{{systems.SummonUndead, 1}}, heardOne},
	domain.SpellSDragon:   {"%s magically summons a dragon!", []summonWave{{systems.SummonDragon, 1}}, heardOne},
	domain.SpellSHiUndead: {"%s magically summons greater undead!",
		[]summonWave{{systems.SummonHiUndead, 8}}, "You hear many creepy things appear nearby."},
	domain.SpellSHiDragon: {"%s magically summons ancient dragons!",
		[]summonWave{{systems.SummonHiDragon, 8}}, "You hear many powerful things appear nearby."},
	domain.SpellSWraith: {"%s magically summons mighty undead opponents!",
		[]summonWave{{systems.SummonWraith, 8}, {systems.SummonHiUndead, 8}}, "You hear many creepy things appear nearby."},
	domain.SpellSUnique: {"%s magically summons special opponents!",
		[]summonWave{{systems.SummonUnique, 8}, {systems.SummonHiUndead, 8}}, "You hear many powerful things appear nearby."},
	domain.SpellSHiDemon: {"%s magically summons greater demons!",
		[]summonWave{{systems.SummonHiDemon, 8}}, "You hear many evil things appear nearby."},
}

func (cc *castCtx) summon(s summon, kin byte) {
	if cc.blind {
		cc.l.Msg(mumbles, cc.name)
	} else {
		cc.l.Msg(s.msg, cc.name)
	}
	count := 0
	for _, w := range s.waves {
		for k := 0; k < w.n; k++ {
			if systems.SummonSpecific(cc.l, cc.l.Player.Pos, cc.rlev, w.kind, kin) {
				count++
			}
		}
	}
	if cc.blind && count > 0 {
		cc.l.Msg(s.heard)
	}
}

// cast разрешает выбранное заклинание.
func (cc *castCtx) cast(s domain.Spell) {
	l, m, p := cc.l, cc.m, cc.l.Player

	if ms, ok := missiles[s]; ok {
		cc.say(ms.blindMsg, ms.msg)
		if ms.extra != "" {
			l.Msg(ms.extra)
		}
		dam := ms.dam(cc)
		if ms.ball {
			cc.breath(cc.source(s), ms.typ, dam)
		} else {
			cc.bolt(cc.source(s), ms.typ, dam)
		}
		if ms.learn != noLearn {
			cc.learn(ms.learn)
		}
		return
	}
	if sm, ok := summons[s]; ok {
		cc.summon(sm, 0)
		return
	}

	switch s {
	case domain.SpellShriek:
		l.Msg("%s makes a high pitched shriek.", cc.name)
		systems.Aggravate(l, cc.h)

	case domain.SpellBrMana, domain.SpellBoPois:
		// Заклинания без эффекта: ход потрачен впустую.

	case domain.SpellDrainMana:
		if p.Csp > 0 {
			l.Msg("%s draws psychic energy from you!", cc.name)
			r1 := l.RNG.Int1(cc.rlev)/2 + 1
			r1 = systems.DrainMana(l, r1)
			if m.HP < m.MaxHP {
				m.Heal(6 * r1)
				if cc.seen {
					l.Msg("%s appears healthier.", cc.name)
				}
			}
		}
		cc.learn(domain.DrsMana)

	case domain.SpellMindBlast:
		if !cc.seen {
			l.Msg("You feel something focusing on your mind.")
		} else {
			l.Msg("%s gazes deep into your eyes.", cc.name)
		}
		if !cc.saves("You resist the effects!") {
			l.Msg("Your mind is blasted by psionic energy.")
			if !p.Has(domain.OFResConfu) {
				systems.IncTimed(l, domain.TmdConfused, l.RNG.Int0(4)+4)
			}
			cc.hurt(l.RNG.Damroll(8, 8))
		}

	case domain.SpellBrainSmash:
		if !cc.seen {
			l.Msg("You feel something focusing on your mind.")
		} else {
			l.Msg("%s looks deep into your eyes.", cc.name)
		}
		if !cc.saves("You resist the effects!") {
			l.Msg("Your mind is blasted by psionic energy.")
			cc.hurt(l.RNG.Damroll(12, 15))
			if !p.Has(domain.OFResBlind) {
				systems.IncTimed(l, domain.TmdBlind, 8+l.RNG.Int0(8))
			}
			if !p.Has(domain.OFResConfu) {
				systems.IncTimed(l, domain.TmdConfused, l.RNG.Int0(4)+4)
			}
			if !p.Has(domain.OFFreeAct) {
				systems.IncTimed(l, domain.TmdParalyzed, l.RNG.Int0(4)+4)
			}
			systems.IncTimed(l, domain.TmdSlow, l.RNG.Int0(4)+4)
		}

	case domain.SpellCause1:
		cc.say(mumbles, "%s points at you and curses.")
		if !cc.saves("You resist the effects!") {
			cc.hurt(l.RNG.Damroll(3, 8))
		}
	case domain.SpellCause2:
		cc.say(mumbles, "%s points at you and curses horribly.")
		if !cc.saves("You resist the effects!") {
			cc.hurt(l.RNG.Damroll(8, 8))
		}
	case domain.SpellCause3:
		cc.say("%s mumbles loudly.", "%s points at you, incanting terribly!")
		if !cc.saves("You resist the effects!") {
			cc.hurt(l.RNG.Damroll(10, 15))
		}
	case domain.SpellCause4:
		cc.say("%s screams the word 'DIE!'", "%s points at you, screaming the word DIE!")
		if !cc.saves("You resist the effects!") {
			cc.hurt(l.RNG.Damroll(15, 15))
			systems.IncTimed(l, domain.TmdCut, l.RNG.Damroll(10, 10))
		}

	case domain.SpellScare:
		cc.say("%s mumbles, and you hear scary noises.", "%s casts a fearful illusion.")
		switch {
		case p.Has(domain.OFResFear):
			l.Msg("You refuse to be frightened.")
		case cc.saves("You refuse to be frightened."):
		default:
			systems.IncTimed(l, domain.TmdAfraid, l.RNG.Int0(4)+4)
		}
		cc.learn(domain.DrsFear)

	case domain.SpellBlind:
		cc.say(mumbles, "%s casts a spell, burning your eyes!")
		switch {
		case p.Has(domain.OFResBlind):
			l.Msg("You are unaffected!")
		case cc.saves("You resist the effects!"):
		default:
			systems.SetTimed(l, domain.TmdBlind, 12+l.RNG.Int0(4))
		}
		cc.learn(domain.DrsBlind)

	case domain.SpellConf:
		cc.say("%s mumbles, and you hear puzzling noises.", "%s creates a mesmerising illusion.")
		switch {
		case p.Has(domain.OFResConfu):
			l.Msg("You disbelieve the feeble spell.")
		case cc.saves("You disbelieve the feeble spell."):
		default:
			systems.IncTimed(l, domain.TmdConfused, l.RNG.Int0(4)+4)
		}
		cc.learn(domain.DrsConf)

	case domain.SpellSlow:
		l.Msg("%s drains power from your muscles!", cc.name)
		switch {
		case p.Has(domain.OFFreeAct):
			l.Msg("You are unaffected!")
		case cc.saves("You resist the effects!"):
		default:
			systems.IncTimed(l, domain.TmdSlow, l.RNG.Int0(4)+4)
		}
		cc.learn(domain.DrsFree)

	case domain.SpellHold:
		cc.say(mumbles, "%s stares deep into your eyes!")
		switch {
		case p.Has(domain.OFFreeAct):
			l.Msg("You are unaffected!")
		case cc.saves("You resist the effects!"):
		default:
			systems.IncTimed(l, domain.TmdParalyzed, l.RNG.Int0(4)+4)
		}
		cc.learn(domain.DrsFree)

	case domain.SpellHaste:
		if cc.blind {
			l.Msg(mumbles, cc.name)
		} else {
			l.Msg("%s concentrates on %s body.", cc.name, cc.poss)
		}
		switch {
		case m.Speed < cc.r.Speed+10:
			l.Msg("%s starts moving faster.", cc.name)
			m.Speed += 10
		case m.Speed < cc.r.Speed+20:
			l.Msg("%s starts moving faster.", cc.name)
			m.Speed += 2
		}

	case domain.SpellHeal:
		cc.heal()

	case domain.SpellBlink:
		l.Msg("%s blinks away.", cc.name)
		systems.TeleportAway(l, cc.h, 10)
	case domain.SpellTport:
		l.Msg("%s teleports away.", cc.name)
		systems.TeleportAway(l, cc.h, domain.MaxSight*2+5)
	case domain.SpellTeleTo:
		l.Msg("%s commands you to return.", cc.name)
		systems.TeleportPlayerTo(l, m.Pos)
	case domain.SpellTeleAway:
		l.Msg("%s teleports you away.", cc.name)
		systems.TeleportPlayer(l, 100)
	case domain.SpellTeleLevel:
		cc.say("%s mumbles strangely.", "%s gestures at your feet.")
		switch {
		case p.Has(domain.OFResNexus):
			l.Msg("You are unaffected!")
		case cc.saves("You resist the effects!"):
		default:
			systems.TeleportPlayerLevel(l)
		}
		cc.learn(domain.DrsNexus)

	case domain.SpellDarkness:
		cc.say(mumbles, "%s gestures in shadow.")
		unliteArea(l, 0, 3)
	case domain.SpellTraps:
		cc.say("%s mumbles, and then cackles evilly.", "%s casts a spell and cackles evilly.")
		trapCreation(l)
	case domain.SpellForget:
		l.Msg("%s tries to blank your mind.", cc.name)
		if !cc.saves("You resist the effects!") && loseAllInfo(l) {
			l.Msg("Your memories fade away.")
		}

	case domain.SpellSKin:
		what := "kin"
		if cc.r.Unique() {
			what = "minions"
		}
		cc.summon(summon{
			msg:   "%s magically summons " + cc.poss + " " + what + ".",
			waves: []summonWave{{systems.SummonKin, 6}},
			heard: heardMany,
		}, cc.r.Char())

	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "monster_ai",
			"race":      cc.r.Name,
			"spell":     s.String(),
		}).Warn("buggy spell")
	}
}

// heal — лечение заклинанием HEAL: rlev*6 здоровья и снятие страха.
func (cc *castCtx) heal() {
	l, m := cc.l, cc.m
	if cc.blind {
		l.Msg(mumbles, cc.name)
	} else {
		l.Msg("%s concentrates on %s wounds.", cc.name, cc.poss)
	}

	m.HP += cc.rlev * 6
	look := "sounds"
	if cc.seen {
		look = "looks"
	}
	if m.HP >= m.MaxHP {
		m.HP = m.MaxHP
		l.Msg("%s %s REALLY healthy!", cc.name, look)
	} else {
		l.Msg("%s %s healthier.", cc.name, look)
	}

	if m.Afraid > 0 {
		m.Afraid = 0
		l.Msg("%s recovers %s courage.", cc.name, cc.poss)
	}
}
