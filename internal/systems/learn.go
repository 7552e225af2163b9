package systems

import (
	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
)

type drsRule struct {
	res, opp, imm domain.SmartFlag
	resFlag       domain.ObjFlag
	oppTimed      domain.Timed
	immFlag       domain.ObjFlag
}

var drsRules = map[domain.Drs]drsRule{
	domain.DrsAcid: {domain.SMResAcid, domain.SMOppAcid, domain.SMImmAcid, domain.OFResAcid, domain.TmdOppAcid, domain.OFImAcid},
	domain.DrsElec: {domain.SMResElec, domain.SMOppElec, domain.SMImmElec, domain.OFResElec, domain.TmdOppElec, domain.OFImElec},
	domain.DrsFire: {domain.SMResFire, domain.SMOppFire, domain.SMImmFire, domain.OFResFire, domain.TmdOppFire, domain.OFImFire},
	domain.DrsCold: {domain.SMResCold, domain.SMOppCold, domain.SMImmCold, domain.OFResCold, domain.TmdOppCold, domain.OFImCold},
	domain.DrsPois: {res: domain.SMResPois, opp: domain.SMOppPois, resFlag: domain.OFResPois, oppTimed: domain.TmdOppPois},
	domain.DrsNeth:  {res: domain.SMResNethr, resFlag: domain.OFResNethr},
	domain.DrsLite:  {res: domain.SMResLite, resFlag: domain.OFResLight},
	domain.DrsDark:  {res: domain.SMResDark, resFlag: domain.OFResDark},
	domain.DrsFear:  {res: domain.SMResFear, resFlag: domain.OFResFear},
	domain.DrsConf:  {res: domain.SMResConfu, resFlag: domain.OFResConfu},
	domain.DrsChaos: {res: domain.SMResChaos, resFlag: domain.OFResChaos},
	domain.DrsDisen: {res: domain.SMResDisen, resFlag: domain.OFResDisen},
	domain.DrsBlind: {res: domain.SMResBlind, resFlag: domain.OFResBlind},
	domain.DrsNexus: {res: domain.SMResNexus, resFlag: domain.OFResNexus},
	domain.DrsSound: {res: domain.SMResSound, resFlag: domain.OFResSound},
	domain.DrsShard: {res: domain.SMResShard, resFlag: domain.OFResShard},
	domain.DrsFree:  {imm: domain.SMImmFree, immFlag: domain.OFFreeAct},
}

// UpdateSmartLearn — монстр наблюдает реакцию игрока на атаку и
// запоминает его защиты. Глупые не учатся, не умные учатся через раз.
func UpdateSmartLearn(l *domain.Level, h types.Handle, what domain.Drs) {
	m := l.Monster(h)
	if m == nil || !l.Opts.SmartLearn {
		return
	}
	r := l.RaceOf(m)
	if r.Flags.Has(domain.RFStupid) {
		return
	}
	if !r.Flags.Has(domain.RFSmart) && l.RNG.Int0(100) < 50 {
		return
	}

	p := l.Player
	if what == domain.DrsMana {
		if p.Msp == 0 {
			m.Learn(domain.SMImmMana)
		}
		return
	}

	rule, ok := drsRules[what]
	if !ok {
		return
	}
	flags := p.Flags()
	if rule.resFlag != domain.OFNone && flags.Has(rule.resFlag) {
		m.Learn(rule.res)
	}
	if rule.oppTimed != domain.TmdNone && p.Is(rule.oppTimed) {
		m.Learn(rule.opp)
	}
	if rule.immFlag != domain.OFNone && flags.Has(rule.immFlag) {
		m.Learn(rule.imm)
	}
}
