package project

// monMsg — реакция монстра на эффект, дописывается к его имени.
type monMsg uint8

const (
	msgNone monMsg = iota
	msgDie
	msgDestroyed
	msgResistALot
	msgHitHard
	msgResist
	msgImmune
	msgResistSomewhat
	msgUnaffected
	msgSpawn
	msgHealthier
	msgFallAsleep
	msgCringeLight
	msgShrivelLight
	msgLoseSkin
	msgDissolve
	msgCatchFire
	msgDisintegrates
	msgBadlyFrozen
	msgFreezeShatter
	msgDisappear
	msgShudder
	msgMaintainShape
	msgChange
	msgFleeInTerror
	msgDazed
	msgMoreDazed
	msgConfused
	msgMoreConfused
	msgFaster
	msgSlower
)

var monMsgText = [...]string{
	msgNone:           "",
	msgDie:            " dies.",
	msgDestroyed:      " is destroyed.",
	msgResistALot:     " resists a lot.",
	msgHitHard:        " is hit hard.",
	msgResist:         " resists.",
	msgImmune:         " is immune.",
	msgResistSomewhat: " resists somewhat.",
	msgUnaffected:     " is unaffected!",
	msgSpawn:          " spawns!",
	msgHealthier:      " looks healthier.",
	msgFallAsleep:     " falls asleep!",
	msgCringeLight:    " cringes from the light!",
	msgShrivelLight:   " shrivels away in the light!",
	msgLoseSkin:       " loses some skin!",
	msgDissolve:       " dissolves!",
	msgCatchFire:      " catches fire!",
	msgDisintegrates:  " disintegrates!",
	msgBadlyFrozen:    " is badly frozen.",
	msgFreezeShatter:  " freezes and shatters!",
	msgDisappear:      " disappears!",
	msgShudder:        " shudders.",
	msgMaintainShape:  " maintains the same shape!",
	msgChange:         " changes!",
	msgFleeInTerror:   " flees in terror!",
	msgDazed:          " is dazed.",
	msgMoreDazed:      " is more dazed.",
	msgConfused:       " looks confused.",
	msgMoreConfused:   " looks more confused.",
	msgFaster:         " starts moving faster.",
	msgSlower:         " starts moving slower.",
}

func (m monMsg) String() string {
	if int(m) >= len(monMsgText) {
		return ""
	}
	return monMsgText[m]
}
