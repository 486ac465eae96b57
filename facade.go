package pluginlog

// Facade helpers using the global Singleton logger.
// Usage: pluginlog.Error("failed: {reason}", pluginlog.Context{"reason": err})

func Log(level Level, message string, ctx Context) { L().Log(level, message, ctx) }

func Emergency(message string, ctx Context) { L().Emergency(message, ctx) }
func Alert(message string, ctx Context)     { L().Alert(message, ctx) }
func Critical(message string, ctx Context)  { L().Critical(message, ctx) }
func Error(message string, ctx Context)     { L().Error(message, ctx) }
func Warning(message string, ctx Context)   { L().Warning(message, ctx) }
func Notice(message string, ctx Context)    { L().Notice(message, ctx) }
func Info(message string, ctx Context)      { L().Info(message, ctx) }
func Debug(message string, ctx Context)     { L().Debug(message, ctx) }
