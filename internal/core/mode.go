package core

type Mode int

const (
	ModeProd Mode = iota
	ModeDev
)

func ModeFromDev(dev bool) Mode {
	if dev {
		return ModeDev
	}
	return ModeProd
}

func (m Mode) String() string {
	if m == ModeDev {
		return "dev"
	}
	return "prod"
}
