package remote

// DefaultHelp is the key table for streaming boxes and sticks
const DefaultHelp = "" +
	"  +-------------------------------+-------------------------+\n" +
	"  | Back           B or <Esc>     | Replay          R       |\n" +
	"  | Home           H              | Info/Settings   i       |\n" +
	"  | Left           h or <Left>    | Rewind          r       |\n" +
	"  | Down           j or <Down>    | Fast-Fwd        f       |\n" +
	"  | Up             k or <Up>      | Play/Pause      <Space> |\n" +
	"  | Right          l or <Right>   | Enter Text      /       |\n" +
	"  | Ok/Enter       <Enter>        |                         |\n" +
	"  +-------------------------------+-------------------------+\n" +
	"   (press q to exit)\n"

// TVHelp adds the power and volume keys
const TVHelp = "" +
	"  +-------------------------------+-------------------------+\n" +
	"  | Power          p              | Replay          R       |\n" +
	"  | Back           B or <Esc>     | Info/Settings   i       |\n" +
	"  | Home           H              | Rewind          r       |\n" +
	"  | Left           h or <Left>    | Fast-Fwd        f       |\n" +
	"  | Down           j or <Down>    | Play/Pause      <Space> |\n" +
	"  | Up             k or <Up>      | Enter Text      /       |\n" +
	"  | Right          l or <Right>   | Volume Up       V       |\n" +
	"  | Ok/Enter       <Enter>        | Volume Down     v       |\n" +
	"  |                               | Volume Mute     M       |\n" +
	"  +-------------------------------+-------------------------+\n" +
	"   (press q to exit)\n"

// Help returns the key table for the device class
func Help(isTV bool) string {
	if isTV {
		return TVHelp
	}
	return DefaultHelp
}
