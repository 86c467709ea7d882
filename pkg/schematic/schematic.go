package schematic

// Result holds both schematic sums.
type Result struct {
	PartNumberSum int64
	GearRatioSum  int64
}

// Schematic bundles a parsed grid with its extracted entities.
type Schematic struct {
	*Resolver
}

// Scan parses raw and extracts its entities.
func Scan(raw string) (*Schematic, error) {
	g, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	entities, err := Extract(g)
	if err != nil {
		return nil, err
	}

	return &Schematic{Resolver: NewResolver(g, entities)}, nil
}

// Result computes both sums. Either sum overflowing int64 is ErrNumberOverflow.
func (s *Schematic) Result() (Result, error) {
	parts, err := PartNumberSum(s.Resolver)
	if err != nil {
		return Result{}, err
	}

	gears, err := GearRatioSum(s.Resolver)
	if err != nil {
		return Result{}, err
	}

	return Result{PartNumberSum: parts, GearRatioSum: gears}, nil
}

// Solve scans raw and returns both sums.
func Solve(raw string) (Result, error) {
	s, err := Scan(raw)
	if err != nil {
		return Result{}, err
	}

	return s.Result()
}
