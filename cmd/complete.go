package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors suggests values for well known flags.
var flagPredictors = map[string]complete.Predictor{
	"config":   predict.Files("*.yaml"),
	"tx":       predict.Files("*.json*"),
	"quotes":   predict.Files("*.json"),
	"format":   predict.Set{formatMarkdown, formatRaw, formatTable, formatJSON},
	"range":    predict.Set{"1H", "1D", "1W", "1M", "YTD", "1Y", "ALL"},
	"override": predict.Set{"none"},
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// flags returns the predictors of every flag in fs.
func flags(fs *flag.FlagSet) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBoolFlag(f):
			res[f.Name] = nil
		case flagPredictors[f.Name] != nil:
			res[f.Name] = flagPredictors[f.Name]
		default:
			res[f.Name] = predict.Something
		}
	})
	return res
}

// Completion describes the commands registered in c, and their flags, for
// shell completion.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flags(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		root.Sub[cmd.Name()] = &complete.Command{Flags: flags(fs)}
	})
	return root
}
