package capture

// Console text shown by a capture run.
const (
	InstructionPrompt = "请输入您的指令 (输入 'stop' 退出):"
	LinePrompt        = "prompt: "
	EchoLabel         = "您输入的内容: "
	EndOfInputNotice  = "无法读取输入，可能是因为运行在非交互式环境中"
	InterruptNotice   = "用户中断操作"
)

// Fallback commands written when no line was captured.
const (
	FallbackEndOfInput  = "help"
	FallbackInterrupted = "stop"
)
