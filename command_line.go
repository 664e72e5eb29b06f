package textgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	Commands = map[string]string{
		"bigrams": PropertyTableFileBigramsDefault,
		"words":   PropertyTableFileWordsDefault,
	}
	OptionPrefixes = []string{"--", "-"}
	OptionList     = []*Option{
		&Option{
			Name:        "P",
			HasArgument: true,
			Doc:         "specify a property file",
		},
		&Option{
			Name:        "p",
			HasArgument: true,
			Doc:         "specify a property value",
		},
		&Option{
			Name:        "table",
			HasArgument: true,
			Doc:         "path of the frequency table file",
		},
		&Option{
			Name:        "n",
			HasArgument: true,
			Doc:         "number of symbols to draw",
		},
		&Option{
			Name:        "o",
			HasArgument: true,
			Doc:         "path of the generated text output file",
		},
		&Option{
			Name:        "chart",
			HasArgument: true,
			Doc:         "render the observed-vs-expected chart to this file",
		},
		&Option{
			Name:        "s",
			HasArgument: false,
			Doc:         "print status to stderr",
		},
		&Option{
			Name:        "h",
			HasArgument: false,
			Doc:         "show this help message and exit",
		},
		&Option{
			Name:        "help",
			HasArgument: false,
			Doc:         "show this help message and exit",
		},
	}
	Options = make(map[string]*Option)

	ProgramName = ""
	OutputDest  *os.File
)

type Option struct {
	Name        string
	HasArgument bool
	Doc         string
}

type Arguments struct {
	Command string
	Options map[string]string
	Properties
}

func Usage() {
	usageFormat := `usage: %s command [options]

Commands:
  bigrams            Synthesize text from a character-bigram frequency table
  words              Synthesize text from a word frequency table

Options:
  -P filename      : specify a property file
  -p name=value    : specify a property value
  -table filename  : path of the frequency table file
  -n count         : number of symbols to draw
  -o filename      : path of the generated text output file
  -chart filename  : render the observed-vs-expected chart to this file
  -s               : print status to stderr

positional arguments:
  {bigrams,words}    Command to run.

optional arguments:
  -h, --help         show this help message and exit`
	Println(usageFormat, ProgramName)
}

func init() {
	ProgramName = filepath.Base(os.Args[0])

	// init options
	for i := 0; i < len(OptionList); i++ {
		o := OptionList[i]
		Options[o.Name] = o
	}
	OutputDest = os.Stdout
}

func ExitOnError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

func ParseArgs() *Arguments {
	if len(os.Args) <= 1 {
		ExitOnError("no enough argument")
	}

	index := 1
	firstArg := os.Args[index]
	if firstArg == "-h" || firstArg == "--help" {
		Usage()
		os.Exit(0)
	}
	index++

	command := firstArg
	tableDefault, ok := Commands[command]
	if !ok {
		ExitOnError("unsupported command: %s", command)
	}

	opts := make(map[string]string)
	props := NewProperties()
	props.Add(PropertyTableFile, tableDefault)
	for i := index; i < len(os.Args); i++ {
		a := os.Args[i]
		for _, p := range OptionPrefixes {
			if strings.HasPrefix(a, p) {
				a = strings.TrimPrefix(a, p)
				break
			}
		}
		option, ok := Options[a]
		if !ok {
			ExitOnError("unknown option: %s", os.Args[i])
		}
		if option.HasArgument {
			i++
			if !(i < len(os.Args)) {
				ExitOnError("missing argument for option: %s", option.Name)
			}
			arg := os.Args[i]
			switch option.Name {
			case "table":
				props.Add(PropertyTableFile, arg)
			case "n":
				props.Add(PropertySymbolCount, arg)
			case "o":
				props.Add(PropertyOutputFile, arg)
			case "chart":
				props.Add(PropertyChartFile, arg)
			case "p":
				// it's a property, should be in `k=v` form
				parts := strings.Split(arg, "=")
				if len(parts) != 2 {
					ExitOnError("invalid property: %s", arg)
				}
				props.Add(parts[0], parts[1])
			case "P":
				propsFromFile, err := LoadProperties(arg)
				if err != nil {
					ExitOnError(err.Error())
				}
				props.Merge(propsFromFile)
			default:
				opts[option.Name] = arg
			}
		} else {
			switch option.Name {
			case "s":
				OutputDest = os.Stderr
			case "h", "help":
				Usage()
				os.Exit(0)
			}
			opts[option.Name] = "true"
		}
	}
	return &Arguments{
		Command:    command,
		Options:    opts,
		Properties: props,
	}
}

func Main() {
	args := ParseArgs()
	if err := SetLogLevel(args.GetDefault(PropertyLogLevel, PropertyLogLevelDefault)); err != nil {
		ExitOnError(err.Error())
	}
	client := NewGeneratorClient(args)
	client.Main()
}
