/* Send APRS messages and bulletins to a UDP TNC */
package main

import (
	bulletin "github.com/doismellburning/ax25bln/src"
)

func main() {
	bulletin.BulletinMain()
}
