package dino

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dino-gesture/internal/config"
)

// Spawner creates obstacles and decorations from the tuning table.
// All randomness comes from its own seeded source, so a seed and an input
// sequence fully determine a run.
type Spawner struct {
	cfg *config.DinoConfig
	rng *rand.Rand
}

// NewSpawner creates a spawner reading cfg, seeded with seed.
func NewSpawner(cfg *config.DinoConfig, seed int64) *Spawner {
	return &Spawner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Spawn runs one tick of Bernoulli trials for every entity kind.
// minGap is the current minimum obstacle gap after difficulty scaling.
func (sp *Spawner) Spawn(s *State, minGap float64) {
	sp.obstacles(s, minGap)
	sp.bird(s)
	sp.cloud(s)
	sp.snowflake(s)
	sp.ornament(s)
}

// canSpawnObstacle reports whether the last obstacle has cleared minGap from
// the right edge.
func (sp *Spawner) canSpawnObstacle(s *State, minGap float64) bool {
	if len(s.Obstacles) == 0 {
		return true
	}
	last := s.Obstacles[len(s.Obstacles)-1]
	return sp.cfg.World.Width-last.X > minGap
}

func (sp *Spawner) obstacles(s *State, minGap float64) {
	if !sp.canSpawnObstacle(s, minGap) {
		return
	}
	oc := sp.cfg.Obstacles
	if sp.rng.Float64() >= oc.SpawnChance {
		return
	}

	cluster := sp.pickCluster()
	spacing := cluster.Spacing.Sample(sp.rng)
	variant := sp.pickVariant()

	baseX := sp.cfg.World.Width + oc.SpawnOffset
	ground := sp.cfg.GroundLine()
	for i := 0; i < cluster.Size; i++ {
		s.Obstacles = append(s.Obstacles, Obstacle{
			X:        baseX + float64(i)*spacing,
			Y:        ground,
			Size:     variant.Size.Sample(sp.rng),
			Width:    variant.Width,
			Height:   variant.Height,
			Variant:  variant.Name,
			Seasonal: variant.Seasonal,
		})
	}
}

// pickCluster draws a cluster row by weight.
func (sp *Spawner) pickCluster() config.ClusterConfig {
	clusters := sp.cfg.Obstacles.Clusters

	total := 0.0
	for _, c := range clusters {
		total += c.Weight
	}
	roll := sp.rng.Float64() * total
	for _, c := range clusters {
		if roll < c.Weight {
			return c
		}
		roll -= c.Weight
	}
	return clusters[len(clusters)-1]
}

// pickVariant chooses the seasonal variant with SeasonalChance, otherwise a
// regular variant uniformly. The whole cluster shares the choice.
func (sp *Spawner) pickVariant() config.VariantConfig {
	var regular, seasonal []config.VariantConfig
	for _, v := range sp.cfg.Obstacles.Variants {
		if v.Seasonal {
			seasonal = append(seasonal, v)
		} else {
			regular = append(regular, v)
		}
	}

	useSeasonal := sp.rng.Float64() < sp.cfg.Obstacles.SeasonalChance
	switch {
	case useSeasonal && len(seasonal) > 0:
		return seasonal[sp.rng.Intn(len(seasonal))]
	case len(regular) > 0:
		return regular[sp.rng.Intn(len(regular))]
	default:
		return seasonal[sp.rng.Intn(len(seasonal))]
	}
}

func (sp *Spawner) bird(s *State) {
	bc := sp.cfg.Decor.Birds
	if len(bc.Lanes) == 0 || sp.rng.Float64() >= bc.Chance {
		return
	}
	lane := bc.Lanes[sp.rng.Intn(len(bc.Lanes))]
	s.Birds = append(s.Birds, Bird{
		X:         sp.cfg.World.Width + sp.rng.Float64()*bc.Spread,
		Y:         sp.cfg.World.Height * lane,
		Speed:     bc.Speed.Sample(sp.rng),
		Size:      bc.Size,
		Amplitude: bc.Amplitude.Sample(sp.rng),
		Frequency: bc.Frequency.Sample(sp.rng),
		Phase:     sp.rng.Float64() * 2 * math.Pi,
		Kind:      sp.rng.Intn(birdKinds),
	})
}

func (sp *Spawner) cloud(s *State) {
	cc := sp.cfg.Decor.Clouds
	if sp.rng.Float64() >= cc.Chance {
		return
	}
	s.Clouds = append(s.Clouds, Cloud{
		X:     sp.cfg.World.Width + sp.rng.Float64()*cc.Spread,
		Y:     sp.rng.Float64()*sp.cfg.World.Height*cc.Band + cc.YOffset,
		Speed: cc.Speed.Sample(sp.rng),
		Size:  cc.Size.Sample(sp.rng),
	})
}

func (sp *Spawner) snowflake(s *State) {
	sc := sp.cfg.Decor.Snow
	if sp.rng.Float64() >= sc.Chance {
		return
	}
	s.Snow = append(s.Snow, Snowflake{
		X:     sp.rng.Float64() * sp.cfg.World.Width,
		Y:     -10,
		Size:  sc.Size.Sample(sp.rng),
		Speed: sc.Speed.Sample(sp.rng),
		Drift: sc.Drift.Sample(sp.rng),
	})
}

func (sp *Spawner) ornament(s *State) {
	oc := sp.cfg.Decor.Ornaments
	if sp.rng.Float64() >= oc.Chance {
		return
	}
	s.Ornaments = append(s.Ornaments, Ornament{
		X:             sp.cfg.World.Width + sp.rng.Float64()*oc.Spread,
		Y:             sp.rng.Float64()*sp.cfg.World.Height*oc.Band + oc.YOffset,
		Speed:         oc.Speed.Sample(sp.rng),
		Size:          oc.Size.Sample(sp.rng),
		Rotation:      sp.rng.Float64() * 2 * math.Pi,
		RotationSpeed: oc.RotationSpeed.Sample(sp.rng),
		Kind:          sp.rng.Intn(ornamentKinds),
	})
}

// updateDecor moves decorations and drops the ones that left the world.
func updateDecor(s *State, cfg *config.DinoConfig) {
	cull := cfg.Decor.CullX

	snow := s.Snow[:0]
	for _, f := range s.Snow {
		f.Y += f.Speed
		f.X += f.Drift
		if f.Y < cfg.World.Height {
			snow = append(snow, f)
		}
	}
	s.Snow = snow

	orns := s.Ornaments[:0]
	for _, o := range s.Ornaments {
		o.X -= o.Speed
		o.Rotation += o.RotationSpeed
		if o.X > cull {
			orns = append(orns, o)
		}
	}
	s.Ornaments = orns

	clouds := s.Clouds[:0]
	for _, c := range s.Clouds {
		c.X -= c.Speed
		if c.X > cull {
			clouds = append(clouds, c)
		}
	}
	s.Clouds = clouds

	birds := s.Birds[:0]
	for _, b := range s.Birds {
		b.X -= b.Speed
		b.Y += math.Sin(b.X*b.Frequency+b.Phase) * b.Amplitude * 0.1
		if b.X > cull {
			birds = append(birds, b)
		}
	}
	s.Birds = birds
}
