package domain

import (
	interfaces "ciphertoy/internal/domain/interfaces"
	types "ciphertoy/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Kind      = types.Kind
	Strategy  = types.Strategy
	Direction = types.Direction
	Key       = types.Key
	Candidate = types.Candidate
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Scorer           = interfaces.Scorer
	ProgressReporter = interfaces.ProgressReporter
	ResultSink       = interfaces.ResultSink
	DictionarySource = interfaces.DictionarySource
)

const (
	KindCaesar    = types.KindCaesar
	KindVigenere  = types.KindVigenere
	KindBeaufort  = types.KindBeaufort
	KindAutokey   = types.KindAutokey
	KindAtbash    = types.KindAtbash
	KindROT13     = types.KindROT13
	KindAffine    = types.KindAffine
	KindBaconian  = types.KindBaconian
	KindRailfence = types.KindRailfence
	KindPolybius  = types.KindPolybius
	KindSimpleSub = types.KindSimpleSub
	KindColumnar  = types.KindColumnar
	KindBase64    = types.KindBase64

	StrategyBounded    = types.StrategyBounded
	StrategyDictionary = types.StrategyDictionary

	Encrypt = types.Encrypt
	Decrypt = types.Decrypt
)

var (
	AllKinds  = types.AllKinds
	ParseKind = types.ParseKind
	ShiftKey  = types.ShiftKey
	AffineKey = types.AffineKey
	TextKey   = types.TextKey
)
