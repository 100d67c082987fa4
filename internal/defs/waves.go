package defs

// WaveDefinition описывает одну волну врагов.
type WaveDefinition struct {
	Enemy    EnemyID `yaml:"enemy"`
	Count    int     `yaml:"count"`    // сколько врагов в волне
	Interval int     `yaml:"interval"` // тиков между появлениями
	Delay    int     `yaml:"delay"`    // тиков затишья перед волной
}

// Wave returns the definition for the n-th wave (0-based). Past the end of the table the
// waves from RepeatFrom onwards cycle forever; ok is false only when there are no waves.
func (c *Catalog) Wave(n int) (WaveDefinition, bool) {
	if len(c.Waves) == 0 || n < 0 {
		return WaveDefinition{}, false
	}
	if n < len(c.Waves) {
		return c.Waves[n], true
	}
	from := c.RepeatFrom
	if from < 0 || from >= len(c.Waves) {
		from = 0
	}
	span := len(c.Waves) - from
	return c.Waves[from+(n-len(c.Waves))%span], true
}
