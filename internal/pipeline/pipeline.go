package pipeline

import (
	"fmt"
	"iter"

	"lazyseq/seqs"
	"lazyseq/seqs/op"
)

// Result is the outcome of a terminal operation.
type Result struct {
	Terminal string `json:"terminal"`
	Value    any    `json:"value"`
}

// Sequence builds the lazy sequence described by cfg, without its terminal.
func (cfg *Config) Sequence() (iter.Seq[int], error) {
	source, err := cfg.Source.sequence()
	if err != nil {
		return nil, err
	}
	ops := make([]seqs.Operation[int], 0, len(cfg.Ops))
	for i, o := range cfg.Ops {
		operation, err := o.operation()
		if err != nil {
			return nil, fmt.Errorf("ops[%d]: %w", i, err)
		}
		ops = append(ops, operation)
	}
	return seqs.Pipe(source, ops...), nil
}

// Run builds the sequence and applies the terminal operation.
func (cfg *Config) Run() (Result, error) {
	seq, err := cfg.Sequence()
	if err != nil {
		return Result{}, err
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	bounded := seqs.Take(seq, limit)

	res := Result{Terminal: cfg.Terminal}
	switch cfg.Terminal {
	case "", "collect":
		res.Terminal = "collect"
		values := seqs.Collect(bounded)
		if values == nil {
			values = []int{}
		}
		res.Value = values
	case "sum":
		res.Value = seqs.Sum(bounded)
	case "count":
		res.Value = seqs.Count(bounded)
	case "max":
		res.Value, err = seqs.Max(bounded)
	case "min":
		res.Value, err = seqs.Min(bounded)
	case "head":
		res.Value = optionalValue(seqs.Head(seq))
	case "last":
		res.Value = optionalValue(seqs.Last(bounded))
	case "isEmpty":
		res.Value = seqs.IsEmpty(seq)
	case "any", "all":
		if cfg.Where == nil {
			return Result{}, fmt.Errorf("%s: missing where: %w", cfg.Terminal, seqs.ErrIllegalArgument)
		}
		predicate, err := cfg.Where.compile(cfg.Terminal)
		if err != nil {
			return Result{}, err
		}
		if cfg.Terminal == "any" {
			res.Value = seqs.Any(bounded, predicate)
		} else {
			res.Value = seqs.All(bounded, predicate)
		}
	default:
		return Result{}, fmt.Errorf("unknown terminal %q: %w", cfg.Terminal, seqs.ErrIllegalArgument)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", cfg.Terminal, err)
	}
	return res, nil
}

// optionalValue maps a missing value to nil, which encodes as JSON null.
func optionalValue(v int, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func (s Source) sequence() (iter.Seq[int], error) {
	step := 1
	if s.Step != nil {
		step = *s.Step
	}
	switch s.Kind {
	case "range":
		return seqs.RangeStep(s.From, s.To, step), nil
	case "values":
		return seqs.Of(s.Values...), nil
	case "repeat":
		return seqs.Repeat(s.Value), nil
	case "iterate":
		return seqs.Iterate(s.From, func(x int) int { return x + step }), nil
	case "":
		return nil, fmt.Errorf("source: missing kind: %w", seqs.ErrIllegalArgument)
	default:
		return nil, fmt.Errorf("source: unknown kind %q: %w", s.Kind, seqs.ErrIllegalArgument)
	}
}

func (o Op) operation() (seqs.Operation[int], error) {
	switch o.Op {
	case "take":
		return op.Take[int](o.N), nil
	case "drop":
		return op.Drop[int](o.N), nil
	case "takeWhere", "rejectAll", "takeWhile", "dropWhile":
		predicate, err := o.predicate()
		if err != nil {
			return nil, err
		}
		switch o.Op {
		case "takeWhere":
			return op.TakeWhere(predicate), nil
		case "rejectAll":
			return op.RejectAll(predicate), nil
		case "takeWhile":
			return op.TakeWhile(predicate), nil
		default:
			return op.DropWhile(predicate), nil
		}
	case "map":
		mul := 1
		if o.Mul != nil {
			mul = *o.Mul
		}
		return op.Map(func(x int) int { return x*mul + o.Add }), nil
	case "cons":
		return op.Cons(o.Value), nil
	case "snoc":
		return op.Snoc(o.Value), nil
	case "append":
		return op.Append(seqs.Of(o.Values...)), nil
	case "cycle":
		return op.Cycle[int](), nil
	case "reverse":
		return op.Reverse[int](), nil
	default:
		return nil, fmt.Errorf("unknown op %q: %w", o.Op, seqs.ErrIllegalArgument)
	}
}

func (o Op) predicate() (func(int) bool, error) {
	return Predicate{Pred: o.Pred, Below: o.Below, Above: o.Above}.compile(o.Op)
}

func (p Predicate) compile(context string) (func(int) bool, error) {
	switch {
	case p.Below != nil:
		below := *p.Below
		return func(x int) bool { return x < below }, nil
	case p.Above != nil:
		above := *p.Above
		return func(x int) bool { return x > above }, nil
	}
	switch p.Pred {
	case "even":
		return func(x int) bool { return x%2 == 0 }, nil
	case "odd":
		return func(x int) bool { return x%2 != 0 }, nil
	case "positive":
		return func(x int) bool { return x > 0 }, nil
	case "negative":
		return func(x int) bool { return x < 0 }, nil
	case "zero":
		return func(x int) bool { return x == 0 }, nil
	default:
		return nil, fmt.Errorf("%s: unknown predicate %q: %w", context, p.Pred, seqs.ErrIllegalArgument)
	}
}
