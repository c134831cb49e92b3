package relay

// Options configures the relay process; populated from CLI flags or the
// environment.
type Options struct {
	Addr         string `short:"a" long:"addr" env:"RELAY_ADDR" description:"listen address" default:"127.0.0.1:5000"`
	CallTimeout  int    `short:"t" long:"timeout" env:"RELAY_TIMEOUT_SECONDS" description:"forwarded call timeout in seconds" default:"30"`
	QueueSize    int    `short:"q" long:"queue" env:"RELAY_QUEUE_SIZE" description:"event queue capacity" default:"100"`
	KeepAlive    int    `short:"k" long:"keepalive" env:"RELAY_KEEPALIVE_SECONDS" description:"SSE keep-alive interval in seconds" default:"25"`
	Name         string `long:"name" env:"RELAY_NAME" description:"implementation name reported on initialize" default:"relay"`
	Version      string `long:"version" env:"RELAY_VERSION" description:"implementation version reported on initialize" default:"0.1"`
	Instructions string `long:"instructions" env:"RELAY_INSTRUCTIONS" description:"instructions reported on initialize"`
}
