package component

// PlayerState — состояние ниндзя внутри симуляции.
// Атака и защита приходят извне (экипировка и навыки) и применяются
// на границе тика, как и любые другие внешние изменения.
type PlayerState struct {
	Attack  int
	Defense int
	Energy  float64

	// Ручное управление: вектор джойстика вместо автопоиска цели.
	ManualControl bool
	ManualDX      float64
	ManualDY      float64

	// Оставшееся время неуязвимости после возрождения.
	InvulnerableFor float64
}
