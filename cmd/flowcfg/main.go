package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/flowsvc/beans"
	"github.com/sghaida/flowsvc/binding"
	"github.com/sghaida/flowsvc/di"
	"github.com/sghaida/flowsvc/engine"
	"github.com/sghaida/flowsvc/expression"
	"github.com/sghaida/flowsvc/flowconfig"
	"github.com/sghaida/flowsvc/mvc"
)

var logger = loggo.GetLogger("flowsvc.cmd.flowcfg")

const usage = "usage: flowcfg <describe|check> -config <file> [-bean name=kind ...] [-log spec]"

// beanKinds builds the default instances -bean can register.
var beanKinds = map[string]func() any{
	"conversion": func() any { return binding.NewDefaultConversionService() },
	"parser":     func() any { return expression.GetExpressionParser(nil) },
	"views":      func() any { return mvc.NewMvcViewFactoryCreator() },
}

// beanFlags collects repeated -bean name=kind flags.
type beanFlags []string

func (b *beanFlags) String() string { return strings.Join(*b, ",") }

func (b *beanFlags) Set(v string) error {
	name, kind, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return errors.NotValidf("bean %q (want name=kind)", v)
	}
	if _, known := beanKinds[kind]; !known {
		return errors.NotValidf("bean kind %q", kind)
	}
	*b = append(*b, v)
	return nil
}

func (b beanFlags) registry() *di.MapRegistry {
	reg := di.NewMapRegistry()
	for _, v := range b {
		name, kind, _ := strings.Cut(v, "=")
		reg.Provide(strings.TrimSpace(name), beanKinds[kind]())
	}
	return reg
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	cmd := args[0]
	if cmd != "describe" && cmd != "check" {
		return errors.Errorf("unknown command %q; %s", cmd, usage)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("flowcfg "+cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", "", "path to a .xml, .yaml/.yml or .hcl file")
	logSpec := fs.String("log", cfg.LoggingConfig, "loggo logging specification")
	var beanArgs beanFlags
	fs.Var(&beanArgs, "bean", "register a default bean as name=kind (conversion|parser|views); repeatable")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if strings.TrimSpace(*configPath) == "" {
		return errors.New("missing -config")
	}
	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		return errors.Annotate(err, "configuring logging")
	}

	defs, err := flowconfig.ParseFile(*configPath)
	if err != nil {
		return err
	}
	logger.Debugf("%s: %d flow-builder-services definitions", *configPath, len(defs))

	switch cmd {
	case "describe":
		return describe(stdout, defs)
	default:
		return check(stdout, defs, beanArgs.registry())
	}
}

func describe(w io.Writer, defs []*beans.Definition) error {
	out := make([]map[string]any, 0, len(defs))
	for _, d := range defs {
		out = append(out, beans.DescribeDefinition(d))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return errors.Annotate(err, "encoding definitions")
	}
	return enc.Close()
}

func check(w io.Writer, defs []*beans.Definition, reg di.Registry) error {
	c := engine.NewContainer(reg)
	failed := 0
	for i, d := range defs {
		label := d.ID
		if label == "" {
			label = "#" + strconv.Itoa(i+1)
		}
		svc, err := di.MaterializeAs[*engine.FlowBuilderServices](c, d)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s: %v\n", label, err)
			continue
		}
		fmt.Fprintf(w, "%s: ok (development=%t)\n", label, svc.Development)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d definitions failed", failed, len(defs))
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "flowcfg:", err)
		os.Exit(1)
	}
}
