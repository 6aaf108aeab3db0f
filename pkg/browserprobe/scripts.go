package browserprobe

// Every script returns a JSON string so results decode with encoding/json
// instead of walking remote objects.

const readSignalsJS = `() => JSON.stringify({
	userAgent: navigator.userAgent,
	platform: navigator.platform,
	maxTouchPoints: navigator.maxTouchPoints || 0,
	deviceMemory: navigator.deviceMemory,
	hardwareConcurrency: navigator.hardwareConcurrency,
})`

// Voices load asynchronously in some engines; the promise settles on the
// first voiceschanged event. The caller bounds the wait.
const readVoicesJS = `() => new Promise((resolve) => {
	if (!('speechSynthesis' in window) || !window.speechSynthesis) return resolve('null')
	const read = () => speechSynthesis.getVoices().map((v) => ({ name: v.name, lang: v.lang }))
	const voices = read()
	if (voices.length) return resolve(JSON.stringify(voices))
	speechSynthesis.addEventListener('voiceschanged', () => resolve(JSON.stringify(read())), { once: true })
})`

const capabilityJS = `(type) => {
	const pick = {
		service: () => ('serviceWorker' in navigator) && navigator.serviceWorker ? navigator.serviceWorker.constructor.name : null,
		shared: () => typeof SharedWorker === 'function' ? SharedWorker.prototype.constructor.name : null,
		dedicated: () => typeof Worker === 'function' ? Worker.prototype.constructor.name : null,
	}[type]
	const name = pick ? pick() : null
	return JSON.stringify({ supported: name !== null, constructor: name || '' })
}`

const blobScriptJS = `(src) => URL.createObjectURL(new Blob([src], { type: 'text/javascript' }))`

// exchangeJS launches one context, sends request and settles with the first
// reply. The context is released before resolving. A service worker is
// reached over the BroadcastChannel named by channel.
const exchangeJS = `(type, request, scriptURL, channel) => new Promise((resolve, reject) => {
	const done = (data, release) => {
		try { release() } catch (e) {}
		resolve(JSON.stringify(data || null))
	}
	if (type === 'dedicated') {
		const w = new Worker(scriptURL)
		w.onmessage = (e) => done(e.data, () => w.terminate())
		w.onerror = (e) => { w.terminate(); reject(new Error(e.message || 'worker failed to load')) }
		w.postMessage(request)
		return
	}
	if (type === 'shared') {
		const w = new SharedWorker(scriptURL)
		w.port.onmessage = (e) => done(e.data, () => w.port.close())
		w.onerror = (e) => reject(new Error(e.message || 'shared worker failed to load'))
		w.port.start()
		w.port.postMessage(request)
		return
	}
	if (type === 'service') {
		navigator.serviceWorker.register(scriptURL, { scope: './' })
			.then((reg) => navigator.serviceWorker.ready.then(() => {
				const bc = new BroadcastChannel(channel)
				bc.onmessage = (e) => {
					if (!e.data || e.data.type === request.type) return
					done(e.data, () => { bc.close(); reg.unregister() })
				}
				bc.postMessage(request)
			}))
			.catch(reject)
		return
	}
	reject(new TypeError('unknown worker context ' + type))
})`
