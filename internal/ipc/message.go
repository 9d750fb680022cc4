package ipc

import "fmt"

// MaxArgs is the number of argument words a message can carry. A client
// message holds five 32-bit words; the first is the opcode.
const MaxArgs = 4

// Message is one decoded control command.
type Message struct {
	Op   Op
	Args [MaxArgs]int32
}

// Encode packs the message into the five data words of a format-32 client
// message.
func (m Message) Encode() [5]uint32 {
	return [5]uint32{
		uint32(m.Op),
		uint32(m.Args[0]),
		uint32(m.Args[1]),
		uint32(m.Args[2]),
		uint32(m.Args[3]),
	}
}

// Decode unpacks the data words of a format-32 client message. Unknown
// opcodes are rejected so the dispatcher never sees them.
func Decode(data [5]uint32) (Message, error) {
	op := Op(data[0])
	if !op.Valid() {
		return Message{}, fmt.Errorf("unknown opcode %d", data[0])
	}
	return Message{
		Op: op,
		Args: [MaxArgs]int32{
			int32(data[1]),
			int32(data[2]),
			int32(data[3]),
			int32(data[4]),
		},
	}, nil
}
